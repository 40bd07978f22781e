package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/concurrency"
	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// Service defines the interface for wallet and ledger operations
type Service interface {
	GetOrCreateWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)
	GetBalance(ctx context.Context, ownerID string) (int, error)
	Credit(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error)
	Debit(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type service struct {
	repo      repository.Wallet
	locks     *concurrency.LockManager
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet, locks *concurrency.LockManager, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetOrCreateWallet returns the owner's wallet, creating it with the initial
// bonus (and the matching INITIAL_BONUS ledger entry) on first access.
func (s *service) GetOrCreateWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetOrCreateCalled, "owner_id", ownerID)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrInvalidInput)
	}

	w, err := s.repo.GetWalletByOwnerID(ctx, ownerID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrWalletNotFound) {
		return nil, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}

	var created *domain.Wallet
	var wasCreated bool
	err = s.locks.WithLock(ownerID, func() error {
		// Re-check under the lock: a concurrent request may have won the race
		if w, err := s.repo.GetWalletByOwnerID(ctx, ownerID); err == nil {
			created = w
			return nil
		} else if !errors.Is(err, domain.ErrWalletNotFound) {
			return fmt.Errorf(ErrMsgGetWalletFailed, err)
		}

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		wallet := domain.NewWallet(ownerID)
		if err := tx.CreateWallet(ctx, *wallet); err != nil {
			return fmt.Errorf(ErrMsgCreateWalletFailed, err)
		}

		bonus, err := domain.NewTransaction(wallet.ID, domain.TransactionEarn, domain.InitialBonus, domain.ReasonInitialBonus, "welcome bonus")
		if err != nil {
			return err
		}
		if err := tx.CreateTransaction(ctx, *bonus); err != nil {
			return fmt.Errorf(ErrMsgRecordTransactionFailed, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}

		created = wallet
		wasCreated = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if wasCreated {
		log.Info(LogMsgWalletCreated, "owner_id", ownerID, "wallet_id", created.ID, "balance", created.Balance)
		s.publishChange(ctx, created, domain.TransactionEarn, domain.InitialBonus, domain.ReasonInitialBonus)
	}

	return created, nil
}

// GetBalance returns the current balance, creating the wallet if needed so a
// first-time player sees the initial bonus rather than an error.
func (s *service) GetBalance(ctx context.Context, ownerID string) (int, error) {
	logger.FromContext(ctx).Info(LogMsgGetBalanceCalled, "owner_id", ownerID)

	w, err := s.GetOrCreateWallet(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// Credit adds coins to the wallet and appends the matching EARN entry, both in
// one commit unit.
func (s *service) Credit(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreditCalled, "owner_id", ownerID, "amount", amount, "reason", reason)

	w, err := s.applyChange(ctx, ownerID, domain.TransactionEarn, amount, reason, description)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgWalletCredited, "owner_id", ownerID, "amount", amount, "balance", w.Balance)
	return w, nil
}

// Debit removes coins from the wallet and appends the matching SPEND entry,
// both in one commit unit.
func (s *service) Debit(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDebitCalled, "owner_id", ownerID, "amount", amount, "reason", reason)

	w, err := s.applyChange(ctx, ownerID, domain.TransactionSpend, amount, reason, description)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgWalletDebited, "owner_id", ownerID, "amount", amount, "balance", w.Balance)
	return w, nil
}

// applyChange runs a single balance change under the owner's lock. The wallet
// update and ledger entry commit together or not at all.
func (s *service) applyChange(ctx context.Context, ownerID string, txType domain.TransactionType, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if !reason.Valid() {
		return nil, fmt.Errorf("%w: transaction reason %q", domain.ErrInvalidInput, reason)
	}

	var updated *domain.Wallet
	err := s.locks.WithLock(ownerID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		wallet, err := tx.GetWalletForUpdate(ctx, ownerID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetWalletFailed, err)
		}

		if txType == domain.TransactionEarn {
			err = wallet.AddCoins(amount)
		} else {
			err = wallet.SpendCoins(amount)
		}
		if err != nil {
			return err
		}

		entry, err := domain.NewTransaction(wallet.ID, txType, amount, reason, description)
		if err != nil {
			return err
		}

		if err := tx.UpdateWallet(ctx, *wallet); err != nil {
			return fmt.Errorf(ErrMsgUpdateWalletFailed, err)
		}
		if err := tx.CreateTransaction(ctx, *entry); err != nil {
			return fmt.Errorf(ErrMsgRecordTransactionFailed, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}

		updated = wallet
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, updated, txType, amount, reason)
	return updated, nil
}

// GetTransactions returns the wallet's ledger entries, newest first.
func (s *service) GetTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetTransactionsCalled, "owner_id", ownerID, "limit", filter.Limit, "offset", filter.Offset)

	w, err := s.repo.GetWalletByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}

	return s.repo.GetTransactionsByWalletID(ctx, w.ID, filter)
}

func (s *service) publishChange(ctx context.Context, w *domain.Wallet, txType domain.TransactionType, amount int, reason domain.TransactionReason) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, event.NewWalletChangedEvent(domain.WalletChangedPayload{
		WalletID:   w.ID,
		OwnerID:    w.OwnerID,
		Type:       string(txType),
		Amount:     amount,
		Reason:     string(reason),
		NewBalance: w.Balance,
	}))
}
