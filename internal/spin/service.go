// Package spin orchestrates the full spin flow: theme lookup, outcome
// generation, ledger settlement, persistence and event publication.
package spin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/engine"
	"github.com/spinworks/SlotEngine_Go/internal/event"
	"github.com/spinworks/SlotEngine_Go/internal/ledger"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/repository"
	"github.com/spinworks/SlotEngine_Go/internal/theme"
)

// Result is the caller-facing outcome of one spin request
type Result struct {
	Record     *domain.SpinRecord `json:"record"`
	NewBalance int64              `json:"new_balance"`
}

// Service defines the interface for spin operations
type Service interface {
	Spin(ctx context.Context, userID, themeKey string, betAmount int64) (*Result, error)
	GetSpin(ctx context.Context, spinID string) (*domain.SpinRecord, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]domain.SpinRecord, error)
	Audit(ctx context.Context, spinID string) (*domain.AuditResult, error)
}

type service struct {
	engine    *engine.Engine
	themes    *theme.Registry
	spins     repository.Spin
	ledger    ledger.Service
	publisher event.Bus
	now       func() time.Time
}

// NewService creates a new spin service. publisher may be nil when no event
// bus is wired.
func NewService(eng *engine.Engine, themes *theme.Registry, spins repository.Spin, ledgerSvc ledger.Service, publisher event.Bus) Service {
	return &service{
		engine:    eng,
		themes:    themes,
		spins:     spins,
		ledger:    ledgerSvc,
		publisher: publisher,
		now:       time.Now,
	}
}

// Spin runs one paid spin end to end. The outcome is generated before the
// ledger is touched; if settlement is rejected the outcome is still
// persisted unsettled so the seed remains auditable, and the rejection is
// returned to the caller.
func (s *service) Spin(ctx context.Context, userID, themeKey string, betAmount int64) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSpinCalled, "userID", userID, "theme", themeKey, "bet", betAmount)

	themeCfg, err := s.themes.Get(themeKey)
	if err != nil {
		return nil, err
	}

	outcome, err := s.engine.Spin(themeCfg, betAmount)
	if err != nil {
		return nil, err
	}

	record := &domain.SpinRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Outcome:   *outcome,
		CreatedAt: s.now().UTC(),
	}

	settlement, err := s.ledger.ApplySpin(ctx, userID, betAmount, outcome.TotalWin, record.ID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			s.persistRejected(ctx, record, err)
		}
		return nil, err
	}
	record.Settled = true

	if err := s.spins.CreateSpin(ctx, record); err != nil {
		// The ledger already settled; losing the record would orphan the
		// debit/credit rows referencing it.
		return nil, fmt.Errorf(ErrMsgCreateSpinFailed, err)
	}

	s.publish(ctx, event.NewSpinCompletedEvent(record))

	log.Info(LogMsgSpinCompleted,
		"spinID", record.ID,
		"totalWin", outcome.TotalWin,
		"bonus", outcome.BonusTriggered,
		"jackpot", outcome.JackpotWon,
		"newBalance", settlement.NewBalance)

	return &Result{Record: record, NewBalance: settlement.NewBalance}, nil
}

// GetSpin returns a stored spin record
func (s *service) GetSpin(ctx context.Context, spinID string) (*domain.SpinRecord, error) {
	return s.spins.GetSpin(ctx, spinID)
}

// GetHistory returns the user's most recent spins, newest first
func (s *service) GetHistory(ctx context.Context, userID string, limit int) ([]domain.SpinRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.spins.GetSpinsByUser(ctx, userID, limit)
}

// persistRejected stores an unsettled record for a spin whose debit was
// rejected. Persistence failure here is logged, not returned; the caller's
// error is the rejection itself.
func (s *service) persistRejected(ctx context.Context, record *domain.SpinRecord, cause error) {
	record.Settled = false
	if err := s.spins.CreateSpin(ctx, record); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistRejectedFailed, "spinID", record.ID, "error", err)
	}
	s.publish(ctx, event.NewSpinRejectedEvent(record.UserID, record.Outcome.ThemeKey, record.Outcome.BetAmount, cause.Error()))
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, evt)
}
