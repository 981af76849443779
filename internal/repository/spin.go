package repository

import (
	"context"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// Spin defines the interface for spin record persistence
type Spin interface {
	CreateSpin(ctx context.Context, record *domain.SpinRecord) error
	GetSpin(ctx context.Context, id string) (*domain.SpinRecord, error)
	GetSpinsByUser(ctx context.Context, userID string, limit int) ([]domain.SpinRecord, error)
	GetRecentSpins(ctx context.Context, limit int) ([]domain.SpinRecord, error)
}
