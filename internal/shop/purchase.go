package shop

import (
	"context"
	"fmt"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// Purchase buys a catalog item for a monster. The wallet debit, the new
// inventory row and the SPEND ledger entry commit as one unit under the
// owner's lock; any failure leaves no partial state.
func (s *service) Purchase(ctx context.Context, ownerID, monsterID, itemID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "owner_id", ownerID, "monster_id", monsterID, "item_id", itemID)

	// 1. Validate request
	if ownerID == "" || monsterID == "" || itemID == "" {
		return nil, fmt.Errorf("%w: owner, monster and item ids are required", domain.ErrInvalidInput)
	}

	// 2. Resolve the catalog item and check it is on sale
	item, err := s.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.CanBePurchased() {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotAvailable, item.Name)
	}

	// 3. Verify the monster exists and belongs to the buyer
	if _, err := s.loadOwnedMonster(ctx, ownerID, monsterID); err != nil {
		return nil, err
	}

	// 4. Reject repeat purchases of the same catalog item
	owned, err := s.inventory.HasItem(ctx, monsterID, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if owned {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemAlreadyOwned, item.Name)
	}

	// 5-6. Debit, grant and record in one commit unit under the owner's lock
	var result *PurchaseResult
	var category string
	err = s.locks.WithLock(ownerID, func() error {
		tx, err := s.inventory.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		wallet, err := tx.GetWalletForUpdate(ctx, ownerID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetWalletFailed, err)
		}

		if err := wallet.SpendCoins(item.Price); err != nil {
			return err
		}

		// Re-check ownership and capacity inside the transaction; the
		// pre-checks above ran without the lock
		items, err := tx.GetByMonsterID(ctx, monsterID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		inv, err := domain.NewInventory(monsterID, ownerID, items)
		if err != nil {
			return err
		}
		if inv.OwnsShopItem(itemID) {
			return fmt.Errorf("%w: %s", domain.ErrItemAlreadyOwned, item.Name)
		}

		granted, err := domain.NewInventoryItem(itemID, monsterID, ownerID)
		if err != nil {
			return err
		}
		if err := inv.AddItem(granted); err != nil {
			return err
		}

		entry, err := domain.NewTransaction(wallet.ID, domain.TransactionSpend, item.Price, domain.ReasonPurchaseItem, item.Name)
		if err != nil {
			return err
		}

		if err := tx.UpdateWallet(ctx, *wallet); err != nil {
			return fmt.Errorf(ErrMsgUpdateWalletFailed, err)
		}
		if err := tx.CreateTransaction(ctx, *entry); err != nil {
			return fmt.Errorf(ErrMsgRecordTransactionFailed, err)
		}
		if err := tx.AddItem(ctx, *granted); err != nil {
			return fmt.Errorf(ErrMsgAddItemFailed, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}

		category = string(item.Category)
		result = &PurchaseResult{
			InventoryItemID: granted.ID,
			NewBalance:      wallet.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.finalizePurchase(ctx, ownerID, monsterID, itemID, category, item.Price, result)

	log.Info(LogMsgItemPurchased, "owner_id", ownerID, "item", item.Name, "price", item.Price, "balance", result.NewBalance)
	return result, nil
}

func (s *service) finalizePurchase(ctx context.Context, ownerID, monsterID, itemID, category string, price int, result *PurchaseResult) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, event.NewItemPurchasedEvent(domain.ItemPurchasedPayload{
		OwnerID:         ownerID,
		MonsterID:       monsterID,
		ShopItemID:      itemID,
		InventoryItemID: result.InventoryItemID,
		Category:        category,
		Price:           price,
		NewBalance:      result.NewBalance,
	}))
}
