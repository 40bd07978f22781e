package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/shop"
)

type GetCatalogResponse struct {
	Items []domain.ShopItem `json:"items"`
}

// HandleGetCatalog returns every item currently for sale
// @Summary Get shop catalog
// @Description Get all available shop items, optionally filtered by category
// @Tags shop
// @Produce json
// @Param category query string false "Filter by category (hat, glasses, shoes, background)"
// @Success 200 {object} GetCatalogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/items [get]
func HandleGetCatalog(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var items []domain.ShopItem
		var err error

		if category := r.URL.Query().Get("category"); category != "" {
			items, err = svc.GetItemsByCategory(r.Context(), domain.ItemCategory(strings.ToLower(category)))
		} else {
			items, err = svc.GetCatalog(r.Context())
		}
		if err != nil {
			log.Error("Failed to get catalog", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Catalog retrieved", "item_count", len(items))

		respondJSON(w, http.StatusOK, GetCatalogResponse{Items: items})
	}
}

type GetItemResponse struct {
	Item *domain.ShopItem `json:"item"`
}

// HandleGetItem returns a single catalog entry
// @Summary Get shop item
// @Description Get a single shop item by id
// @Tags shop
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} GetItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/items/{id} [get]
func HandleGetItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID := chi.URLParam(r, "id")
		if itemID == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
			return
		}

		item, err := svc.GetItem(r.Context(), itemID)
		if err != nil {
			log.Error("Failed to get item", "error", err, "item_id", itemID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, GetItemResponse{Item: item})
	}
}

type PurchaseRequest struct {
	OwnerID   string `json:"owner_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	MonsterID string `json:"monster_id" validate:"required,max=100"`
	ItemID    string `json:"item_id" validate:"required,max=100"`
}

type PurchaseResponse struct {
	InventoryItemID string `json:"inventory_item_id"`
	NewBalance      int    `json:"new_balance"`
}

// HandlePurchase buys a shop item for a monster
// @Summary Purchase item
// @Description Debit the owner's wallet and grant the item to the monster's inventory atomically
// @Tags shop
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase details"
// @Success 200 {object} PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 409 {object} ErrorResponse "Already owned or unavailable"
// @Failure 500 {object} ErrorResponse
// @Router /shop/purchase [post]
func HandlePurchase(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode purchase request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		log.Debug("Purchase request", "owner_id", req.OwnerID, "monster_id", req.MonsterID, "item_id", req.ItemID)

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		result, err := svc.Purchase(r.Context(), req.OwnerID, req.MonsterID, req.ItemID)
		if err != nil {
			log.Error("Failed to purchase item", "error", err, "owner_id", req.OwnerID, "item_id", req.ItemID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Item purchased", "owner_id", req.OwnerID, "monster_id", req.MonsterID, "item_id", req.ItemID, "new_balance", result.NewBalance)

		respondJSON(w, http.StatusOK, PurchaseResponse{
			InventoryItemID: result.InventoryItemID,
			NewBalance:      result.NewBalance,
		})
	}
}

type EquipRequest struct {
	OwnerID         string `json:"owner_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	MonsterID       string `json:"monster_id" validate:"required,max=100"`
	InventoryItemID string `json:"inventory_item_id" validate:"required,max=100"`
}

// HandleEquip equips an owned item, displacing any item in the same category
// @Summary Equip item
// @Description Equip an owned cosmetic; any equipped item in the same category is unequipped first
// @Tags shop
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Equip details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Ownership mismatch"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/equip [post]
func HandleEquip(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleEquipChange(w, r, "equip", svc.Equip)
	}
}

// HandleUnequip removes an equipped item from a monster
// @Summary Unequip item
// @Description Unequip a currently equipped cosmetic
// @Tags shop
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Unequip details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Ownership mismatch"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/unequip [post]
func HandleUnequip(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleEquipChange(w, r, "unequip", svc.Unequip)
	}
}

func handleEquipChange(w http.ResponseWriter, r *http.Request, op string, change func(ctx context.Context, ownerID, monsterID, inventoryItemID string) error) {
	log := logger.FromContext(r.Context())

	var req EquipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode equip request", "error", err, "op", op)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	log.Debug("Equip change request", "op", op, "owner_id", req.OwnerID, "monster_id", req.MonsterID, "inventory_item_id", req.InventoryItemID)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Invalid request", "error", err, "op", op)
		respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
		return
	}

	if err := change(r.Context(), req.OwnerID, req.MonsterID, req.InventoryItemID); err != nil {
		log.Error("Failed to change equip state", "error", err, "op", op, "inventory_item_id", req.InventoryItemID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Equip state changed", "op", op, "monster_id", req.MonsterID, "inventory_item_id", req.InventoryItemID)

	respondJSON(w, http.StatusOK, SuccessResponse{Message: fmt.Sprintf("Item %sped successfully", op)})
}

type GetInventoryResponse struct {
	Items []*domain.InventoryItem `json:"items"`
}

// HandleGetInventory returns a monster's inventory
// @Summary Get monster inventory
// @Description Get every item the monster owns, equipped or not
// @Tags shop
// @Produce json
// @Param monster_id path string true "Monster ID"
// @Success 200 {object} GetInventoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /monsters/{monster_id}/inventory [get]
func HandleGetInventory(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		monsterID := chi.URLParam(r, "monster_id")
		if monsterID == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "monster_id"))
			return
		}

		items, err := svc.GetInventory(r.Context(), monsterID)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "monster_id", monsterID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Inventory retrieved", "monster_id", monsterID, "item_count", len(items))

		respondJSON(w, http.StatusOK, GetInventoryResponse{Items: items})
	}
}

type SetAvailabilityRequest struct {
	ItemID    string `json:"item_id" validate:"required,max=100"`
	Available *bool  `json:"available" validate:"required"`
}

// HandleSetItemAvailability toggles whether an item can be purchased (admin action)
// @Summary Set item availability
// @Description Enable or disable purchasing of a catalog item
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetAvailabilityRequest true "Availability details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/shop/availability [post]
func HandleSetItemAvailability(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetAvailabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode availability request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		if err := svc.SetItemAvailability(r.Context(), req.ItemID, *req.Available); err != nil {
			log.Error("Failed to set item availability", "error", err, "item_id", req.ItemID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Item availability updated", "item_id", req.ItemID, "available", *req.Available)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item availability updated"})
	}
}
