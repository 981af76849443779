// Package mocks provides testify mocks for service interfaces used in
// handler and integration tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/ledger"
	"github.com/spinworks/SlotEngine_Go/internal/spin"
)

// MockSpinService is a mock implementation of spin.Service
type MockSpinService struct {
	mock.Mock
}

func (m *MockSpinService) Spin(ctx context.Context, userID, themeKey string, betAmount int64) (*spin.Result, error) {
	args := m.Called(ctx, userID, themeKey, betAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spin.Result), args.Error(1)
}

func (m *MockSpinService) GetSpin(ctx context.Context, spinID string) (*domain.SpinRecord, error) {
	args := m.Called(ctx, spinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinRecord), args.Error(1)
}

func (m *MockSpinService) GetHistory(ctx context.Context, userID string, limit int) ([]domain.SpinRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpinRecord), args.Error(1)
}

func (m *MockSpinService) Audit(ctx context.Context, spinID string) (*domain.AuditResult, error) {
	args := m.Called(ctx, spinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditResult), args.Error(1)
}

// MockLedgerService is a mock implementation of ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) GetHistory(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) Adjust(ctx context.Context, userID string, amount int64, kind domain.TransactionKind, reason, reference string) (*domain.TxResult, error) {
	args := m.Called(ctx, userID, amount, kind, reason, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxResult), args.Error(1)
}

func (m *MockLedgerService) ApplySpin(ctx context.Context, userID string, betAmount, winAmount int64, spinID string) (*ledger.SpinSettlement, error) {
	args := m.Called(ctx, userID, betAmount, winAmount, spinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.SpinSettlement), args.Error(1)
}

func (m *MockLedgerService) VerifyConsistency(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
