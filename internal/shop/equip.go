package shop

import (
	"context"
	"fmt"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// Equip puts an owned item on the monster. At most one item per cosmetic
// category stays equipped: everything else in the target's category is
// unequipped in the same database transaction. The whole displace-then-equip
// sequence runs under the owner's lock with the inventory read inside the
// transaction, so concurrent equips cannot both see a stale "currently worn"
// set and commit overlapping equip flags.
func (s *service) Equip(ctx context.Context, ownerID, monsterID, inventoryItemID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "owner_id", ownerID, "monster_id", monsterID, "inventory_item_id", inventoryItemID)

	if _, err := s.loadOwnedMonster(ctx, ownerID, monsterID); err != nil {
		return err
	}

	var category string
	err := s.locks.WithLock(ownerID, func() error {
		tx, err := s.inventory.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		items, err := tx.GetByMonsterID(ctx, monsterID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		inv, err := domain.NewInventory(monsterID, ownerID, items)
		if err != nil {
			return err
		}

		target := inv.FindItem(inventoryItemID)
		if target == nil {
			return fmt.Errorf("%w: %s", domain.ErrInventoryItemNotFound, inventoryItemID)
		}

		if category, err = s.resolveCategory(ctx, target.ItemID); err != nil {
			return err
		}

		// Displace whatever currently occupies the category
		for _, worn := range inv.EquippedItems() {
			if worn.ID == target.ID {
				continue
			}
			wornCategory, err := s.resolveCategory(ctx, worn.ItemID)
			if err != nil {
				return err
			}
			if wornCategory != category {
				continue
			}
			worn.Unequip()
			if err := tx.UpdateItem(ctx, *worn); err != nil {
				return fmt.Errorf(ErrMsgUpdateItemFailed, err)
			}
			log.Info(LogMsgCategorySwap, "category", category, "displaced", worn.ID)
		}

		target.Equip()
		if err := tx.UpdateItem(ctx, *target); err != nil {
			return fmt.Errorf(ErrMsgUpdateItemFailed, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishEquipChange(ctx, monsterID, inventoryItemID, category, true)

	log.Info(LogMsgItemEquipped, "monster_id", monsterID, "inventory_item_id", inventoryItemID, "category", category)
	return nil
}

// Unequip takes an owned item off the monster. Unlike Equip there is nothing
// to displace, so this is a single direct write.
func (s *service) Unequip(ctx context.Context, ownerID, monsterID, inventoryItemID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "owner_id", ownerID, "monster_id", monsterID, "inventory_item_id", inventoryItemID)

	if _, err := s.loadOwnedMonster(ctx, ownerID, monsterID); err != nil {
		return err
	}

	item, err := s.inventory.GetItem(ctx, inventoryItemID)
	if err != nil {
		return err
	}
	if item.MonsterID != monsterID {
		return fmt.Errorf("%w: item %s", domain.ErrOwnershipMismatch, inventoryItemID)
	}

	category, err := s.resolveCategory(ctx, item.ItemID)
	if err != nil {
		return err
	}

	item.Unequip()
	if err := s.inventory.UpdateItem(ctx, *item); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, err)
	}

	s.publishEquipChange(ctx, monsterID, item.ID, category, false)

	log.Info(LogMsgItemUnequipped, "monster_id", monsterID, "inventory_item_id", item.ID)
	return nil
}

// resolveCategory maps an owned item back to its catalog category. A missing
// catalog row means the inventory references an item the catalog no longer
// knows, which is a data-integrity fault rather than a user error.
func (s *service) resolveCategory(ctx context.Context, shopItemID string) (string, error) {
	item, err := s.catalog.GetItemByID(ctx, shopItemID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgCatalogDesync, "shop_item_id", shopItemID, "error", err)
		return "", fmt.Errorf("%w: shop item %s", domain.ErrCatalogDesync, shopItemID)
	}
	return string(item.Category), nil
}

func (s *service) publishEquipChange(ctx context.Context, monsterID, inventoryItemID, category string, equipped bool) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, event.NewItemEquippedEvent(domain.ItemEquippedPayload{
		MonsterID:       monsterID,
		InventoryItemID: inventoryItemID,
		Category:        category,
		Equipped:        equipped,
	}))
}
