package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// SpinRepository implements repository.Spin backed by process memory
type SpinRepository struct {
	mu     sync.RWMutex
	spins  map[string]domain.SpinRecord
	byUser map[string][]string
	order  []string
}

// NewSpinRepository creates an empty SpinRepository
func NewSpinRepository() *SpinRepository {
	return &SpinRepository{
		spins:  make(map[string]domain.SpinRecord),
		byUser: make(map[string][]string),
	}
}

// CreateSpin stores a spin record, assigning ID and timestamp when absent
func (r *SpinRepository) CreateSpin(ctx context.Context, record *domain.SpinRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.spins[record.ID] = *record
	r.byUser[record.UserID] = append(r.byUser[record.UserID], record.ID)
	r.order = append(r.order, record.ID)
	return nil
}

// GetSpin returns a spin record by ID
func (r *SpinRepository) GetSpin(ctx context.Context, id string) (*domain.SpinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.spins[id]
	if !ok {
		return nil, domain.ErrSpinNotFound
	}
	rec := record
	return &rec, nil
}

// GetSpinsByUser returns the user's most recent spins, newest first
func (r *SpinRepository) GetSpinsByUser(ctx context.Context, userID string, limit int) ([]domain.SpinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	if limit <= 0 || limit > len(ids) {
		limit = len(ids)
	}

	result := make([]domain.SpinRecord, 0, limit)
	for i := len(ids) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.spins[ids[i]])
	}
	return result, nil
}

// GetRecentSpins returns the most recent spins across all users, newest first
func (r *SpinRepository) GetRecentSpins(ctx context.Context, limit int) ([]domain.SpinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}

	result := make([]domain.SpinRecord, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.spins[r.order[i]])
	}
	return result, nil
}
