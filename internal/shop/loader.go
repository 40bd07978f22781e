package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/pricing"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
	"github.com/tamaverse/TamaPet_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemName = errors.New("duplicate item name")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the shop catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single catalog item definition in the JSON. Prices are
// not part of the file; they derive from category and rarity.
type Def struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Rarity         string `json:"rarity"`
	ImageURL       string `json:"image_url,omitempty"`
	BackgroundType string `json:"background_type,omitempty"`
}

// Loader handles loading and validating catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Shop) (*SyncResult, error)
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if def.Name == "" {
			return fmt.Errorf("%w: item at index %d has empty name", ErrInvalidConfig, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateItemName, def.Name)
		}
		names[def.Name] = true

		if !domain.ItemCategory(def.Category).Valid() {
			return fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidConfig, def.Name, def.Category)
		}
		if !domain.ItemRarity(def.Rarity).Valid() {
			return fmt.Errorf("%w: item %q has unknown rarity %q", ErrInvalidConfig, def.Name, def.Rarity)
		}
		if domain.ItemCategory(def.Category) == domain.CategoryBackground && def.BackgroundType == "" {
			return fmt.Errorf("%w: background %q needs a background_type", ErrInvalidConfig, def.Name)
		}
	}

	return nil
}

// SyncToDatabase syncs the catalog configuration to the database idempotently:
// new names are inserted, changed entries updated, the rest skipped.
// Availability toggles done by admins survive a re-sync.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Shop) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	result := &SyncResult{}
	for _, def := range config.Items {
		if err := l.syncOneItem(ctx, repo, def, result); err != nil {
			return nil, err
		}
	}

	log.Info("Catalog sync completed",
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func (l *catalogLoader) syncOneItem(ctx context.Context, repo repository.Shop, def Def, result *SyncResult) error {
	log := logger.FromContext(ctx)

	category := domain.ItemCategory(def.Category)
	rarity := domain.ItemRarity(def.Rarity)
	price := pricing.ItemPrice(category, rarity)

	existing, err := repo.GetItemByName(ctx, def.Name)
	if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
		return fmt.Errorf("failed to look up item %q: %w", def.Name, err)
	}

	if existing != nil {
		needsUpdate := existing.Description != def.Description ||
			existing.Category != category ||
			existing.Rarity != rarity ||
			existing.Price != price ||
			existing.ImageURL != def.ImageURL ||
			existing.BackgroundType != def.BackgroundType

		if !needsUpdate {
			result.ItemsSkipped++
			return nil
		}

		existing.Description = def.Description
		existing.Category = category
		existing.Rarity = rarity
		existing.Price = price
		existing.ImageURL = def.ImageURL
		existing.BackgroundType = def.BackgroundType

		if err := repo.UpdateItem(ctx, *existing); err != nil {
			return fmt.Errorf("failed to update item %q: %w", def.Name, err)
		}
		result.ItemsUpdated++
		log.Info("Updated catalog item", "name", def.Name)
		return nil
	}

	item, err := domain.NewShopItem(def.Name, def.Description, category, rarity, price)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, def.Name, err)
	}
	item.ImageURL = def.ImageURL
	item.BackgroundType = def.BackgroundType

	if err := repo.CreateItem(ctx, *item); err != nil {
		return fmt.Errorf("failed to insert item %q: %w", def.Name, err)
	}
	result.ItemsInserted++
	log.Info("Inserted catalog item", "name", def.Name, "price", price)
	return nil
}
