package repository

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
)

// SafeRollback rolls back tx, logging real failures. A rollback after commit
// reports the transaction as closed; that is the normal deferred-rollback
// path and stays silent.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || err.Error() == domain.ErrMsgTxClosed {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
