package monster

import (
	"context"
	"fmt"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/concurrency"
	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/pricing"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// CreateResult contains the result of a monster creation
type CreateResult struct {
	Monster   *domain.Monster `json:"monster"`
	PricePaid int             `json:"price_paid"`
}

// Service defines the interface for monster and progression operations
type Service interface {
	CreateMonster(ctx context.Context, ownerID, name string) (*CreateResult, error)
	GetMonster(ctx context.Context, ownerID, monsterID string) (*domain.Monster, error)
	ListMonsters(ctx context.Context, ownerID string) ([]*domain.Monster, error)
	NextMonsterPrice(ctx context.Context, ownerID string) (int, error)
	PerformAction(ctx context.Context, ownerID, monsterID string, action domain.CareAction) (*ActionResult, error)
}

type service struct {
	repo      repository.Monster
	locks     *concurrency.LockManager
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new monster service
func NewService(repo repository.Monster, locks *concurrency.LockManager, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateMonster creates a monster for the owner. The first monsters are free;
// after that the creation fee rises linearly and is debited in the same
// commit unit that inserts the monster.
func (s *service) CreateMonster(ctx context.Context, ownerID, name string) (*CreateResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateMonsterCalled, "owner_id", ownerID, "name", name)

	newMonster, err := domain.NewMonster(ownerID, name)
	if err != nil {
		return nil, err
	}

	var result *CreateResult
	err = s.locks.WithLock(ownerID, func() error {
		count, err := s.repo.CountByOwnerID(ctx, ownerID)
		if err != nil {
			return fmt.Errorf(ErrMsgCountMonstersFailed, err)
		}
		price := pricing.MonsterCreationPrice(count)

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		if price > 0 {
			wallet, err := tx.GetWalletForUpdate(ctx, ownerID)
			if err != nil {
				return fmt.Errorf(ErrMsgGetWalletFailed, err)
			}
			if err := wallet.SpendCoins(price); err != nil {
				return err
			}

			entry, err := domain.NewTransaction(wallet.ID, domain.TransactionSpend, price, domain.ReasonCreateMonster, name)
			if err != nil {
				return err
			}
			if err := tx.UpdateWallet(ctx, *wallet); err != nil {
				return fmt.Errorf(ErrMsgUpdateWalletFailed, err)
			}
			if err := tx.CreateTransaction(ctx, *entry); err != nil {
				return fmt.Errorf(ErrMsgRecordTransactionFailed, err)
			}
		}

		if err := tx.CreateMonster(ctx, *newMonster); err != nil {
			return fmt.Errorf(ErrMsgCreateMonsterFailed, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}

		result = &CreateResult{Monster: newMonster, PricePaid: price}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewMonsterCreatedEvent(domain.MonsterCreatedPayload{
			OwnerID:   ownerID,
			MonsterID: newMonster.ID,
			Name:      name,
			PricePaid: result.PricePaid,
		}))
	}

	log.Info(LogMsgMonsterCreated, "owner_id", ownerID, "monster_id", newMonster.ID, "price", result.PricePaid)
	return result, nil
}

// GetMonster returns one of the owner's monsters.
func (s *service) GetMonster(ctx context.Context, ownerID, monsterID string) (*domain.Monster, error) {
	logger.FromContext(ctx).Info(LogMsgGetMonsterCalled, "owner_id", ownerID, "monster_id", monsterID)

	return s.loadOwnedMonster(ctx, ownerID, monsterID)
}

// ListMonsters returns every monster the owner has.
func (s *service) ListMonsters(ctx context.Context, ownerID string) ([]*domain.Monster, error) {
	logger.FromContext(ctx).Info(LogMsgListMonstersCalled, "owner_id", ownerID)

	return s.repo.GetMonstersByOwnerID(ctx, ownerID)
}

// NextMonsterPrice returns what the owner's next monster would cost.
func (s *service) NextMonsterPrice(ctx context.Context, ownerID string) (int, error) {
	count, err := s.repo.CountByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCountMonstersFailed, err)
	}
	return pricing.MonsterCreationPrice(count), nil
}

// PerformAction resolves one care action. The monster update and the coin
// reward (when the action matched) commit as one unit under the owner's lock,
// so there is no window where XP advanced but the reward was lost.
func (s *service) PerformAction(ctx context.Context, ownerID, monsterID string, action domain.CareAction) (*ActionResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPerformActionCalled, "owner_id", ownerID, "monster_id", monsterID, "action", action)

	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}

	var result ActionResult
	err := s.locks.WithLock(ownerID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		m, err := tx.GetMonsterForUpdate(ctx, monsterID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetMonsterFailed, err)
		}
		if m.OwnerID != ownerID {
			return fmt.Errorf("%w: monster %s does not belong to %s", domain.ErrOwnershipMismatch, monsterID, ownerID)
		}

		result = ResolveAction(*m, action)
		result.Apply(m)
		m.UpdatedAt = s.now().UTC()

		if err := tx.UpdateMonster(ctx, *m); err != nil {
			return fmt.Errorf(ErrMsgUpdateMonsterFailed, err)
		}

		if result.Rewarded {
			wallet, err := tx.GetWalletForUpdate(ctx, ownerID)
			if err != nil {
				return fmt.Errorf(ErrMsgGetWalletFailed, err)
			}
			if err := wallet.AddCoins(result.Reward); err != nil {
				return err
			}

			entry, err := domain.NewTransaction(wallet.ID, domain.TransactionEarn, result.Reward, action.Reason(), m.Name)
			if err != nil {
				return err
			}
			if err := tx.UpdateWallet(ctx, *wallet); err != nil {
				return fmt.Errorf(ErrMsgUpdateWalletFailed, err)
			}
			if err := tx.CreateTransaction(ctx, *entry); err != nil {
				return fmt.Errorf(ErrMsgRecordTransactionFailed, err)
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.finalizeAction(ctx, ownerID, monsterID, result)

	log.Info(LogMsgActionResolved,
		"monster_id", monsterID,
		"action", action,
		"old_state", result.OldState,
		"new_state", result.NewState,
		"xp", result.NewXP,
		"level", result.NewLevel,
		"rewarded", result.Rewarded)
	return &result, nil
}

func (s *service) finalizeAction(ctx context.Context, ownerID, monsterID string, result ActionResult) {
	if s.publisher == nil {
		return
	}

	s.publisher.PublishWithRetry(ctx, event.NewMonsterActionEvent(domain.MonsterActionPayload{
		OwnerID:   ownerID,
		MonsterID: monsterID,
		Action:    string(result.Action),
		OldState:  string(result.OldState),
		NewState:  string(result.NewState),
		XP:        result.NewXP,
		Level:     result.NewLevel,
		Rewarded:  result.Rewarded,
		Reward:    result.Reward,
	}))

	// One leveled_up event per resolution, no matter how many thresholds the
	// XP jump crossed
	if result.LeveledUp() {
		logger.FromContext(ctx).Info(LogMsgMonsterLeveledUp, "monster_id", monsterID, "old_level", result.OldLevel, "new_level", result.NewLevel)
		s.publisher.PublishWithRetry(ctx, event.NewMonsterLeveledUpEvent(domain.MonsterLeveledUpPayload{
			OwnerID:   ownerID,
			MonsterID: monsterID,
			OldLevel:  result.OldLevel,
			NewLevel:  result.NewLevel,
		}))
	}
}

// loadOwnedMonster fetches a monster and verifies the caller owns it.
func (s *service) loadOwnedMonster(ctx context.Context, ownerID, monsterID string) (*domain.Monster, error) {
	m, err := s.repo.GetMonsterByID(ctx, monsterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMonsterFailed, err)
	}
	if m.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: monster %s does not belong to %s", domain.ErrOwnershipMismatch, monsterID, ownerID)
	}
	return m, nil
}
