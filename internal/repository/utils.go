package repository

import (
	"context"

	"github.com/spinworks/SlotEngine_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any failure. Safe to defer
// after a successful Commit; implementations treat that as a no-op.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
