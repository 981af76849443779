package spin

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/engine"
	"github.com/spinworks/SlotEngine_Go/internal/event"
	"github.com/spinworks/SlotEngine_Go/internal/ledger"
	"github.com/spinworks/SlotEngine_Go/internal/repository/memory"
	"github.com/spinworks/SlotEngine_Go/internal/theme"
)

type fixture struct {
	svc       Service
	ledgerSvc ledger.Service
	spins     *memory.SpinRepository
	bus       *event.MemoryBus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	writeThemeFile(t, dir, "classic")

	bus := event.NewMemoryBus()
	ledgerSvc := ledger.NewService(memory.NewLedgerRepository(), bus)
	spins := memory.NewSpinRepository()
	svc := NewService(engine.New(), theme.NewRegistry(dir), spins, ledgerSvc, bus)

	return &fixture{svc: svc, ledgerSvc: ledgerSvc, spins: spins, bus: bus}
}

func writeThemeFile(t *testing.T, dir, key string) {
	t.Helper()

	positions := func(row int) []domain.Position {
		p := make([]domain.Position, 5)
		for col := range p {
			p[col] = domain.Position{Row: row, Col: col}
		}
		return p
	}

	cfg := domain.ThemeConfig{
		Key:     key,
		Name:    "Classic Fruits",
		Rows:    3,
		Columns: 5,
		Symbols: []domain.Symbol{
			{ID: "A", Weight: 5, Paytable: []int64{0, 5, 20, 50}},
			{ID: "B", Weight: 3, Paytable: []int64{0, 2, 4, 8}},
			{ID: "W", Weight: 1, Paytable: []int64{0, 10, 50, 200}},
			{ID: "S", Weight: 1, Paytable: []int64{0, 0, 0, 0}},
		},
		Paylines: []domain.Payline{
			{ID: "top", Positions: positions(0)},
			{ID: "middle", Positions: positions(1)},
			{ID: "bottom", Positions: positions(2)},
		},
		WildSymbol:    "W",
		ScatterSymbol: "S",
		Bonus:         domain.BonusRules{ScatterTrigger: 3, FreeSpins: 5, Multiplier: 2},
		Jackpot:       domain.JackpotRules{Kind: domain.JackpotFixed, Amount: 1000},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, key+".json"), data, 0o644))
}

func TestSpin_SettlesAndPersists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledgerSvc.Adjust(ctx, "user-1", 10_000, domain.TxKindManual, "funding", "")
	require.NoError(t, err)

	var completed []event.SpinCompletedPayloadV1
	f.bus.Subscribe(event.Type(domain.EventSpinCompleted), func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.SpinCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		completed = append(completed, payload)
		return nil
	})

	result, err := f.svc.Spin(ctx, "user-1", "classic", 100)
	require.NoError(t, err)
	require.NotNil(t, result.Record)

	record := result.Record
	assert.True(t, record.Settled)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "classic", record.Outcome.ThemeKey)
	assert.NotEmpty(t, record.Outcome.Seed)

	// Balance moved by exactly win minus bet.
	balance, err := f.ledgerSvc.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 10_000-100+record.Outcome.TotalWin, balance)
	assert.Equal(t, balance, result.NewBalance)

	// Record is retrievable and identical.
	stored, err := f.svc.GetSpin(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, stored.Outcome.Grid.Equal(record.Outcome.Grid))
	assert.Equal(t, record.Outcome.TotalWin, stored.Outcome.TotalWin)

	require.Len(t, completed, 1)
	assert.Equal(t, record.ID, completed[0].SpinID)
	assert.True(t, completed[0].Settled)
}

func TestSpin_InsufficientBalancePersistsUnsettled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledgerSvc.Adjust(ctx, "user-1", 50, domain.TxKindManual, "funding", "")
	require.NoError(t, err)

	var rejected []event.SpinRejectedPayloadV1
	f.bus.Subscribe(event.Type(domain.EventSpinRejected), func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.SpinRejectedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		rejected = append(rejected, payload)
		return nil
	})

	_, err = f.svc.Spin(ctx, "user-1", "classic", 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// Balance untouched.
	balance, err := f.ledgerSvc.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	// The outcome is still on record, unsettled, for later audit.
	history, err := f.svc.GetHistory(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].Settled)
	assert.NotEmpty(t, history[0].Outcome.Seed)

	require.Len(t, rejected, 1)
	assert.Equal(t, "user-1", rejected[0].UserID)
}

func TestSpin_UnknownTheme(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Spin(context.Background(), "user-1", "missing", 100)
	assert.ErrorIs(t, err, domain.ErrThemeNotFound)
}

func TestSpin_UserWithoutWalletRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Spin(ctx, "ghost", "classic", 100)
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)

	// No outcome is recorded for a user the ledger has never seen.
	history, err := f.svc.GetHistory(ctx, "ghost", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSpin_InvalidBetWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Spin(ctx, "user-1", "classic", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)

	history, err := f.svc.GetHistory(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetHistory_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledgerSvc.Adjust(ctx, "user-1", 100_000, domain.TxKindManual, "funding", "")
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 5; i++ {
		result, err := f.svc.Spin(ctx, "user-1", "classic", 10)
		require.NoError(t, err)
		ids = append(ids, result.Record.ID)
	}

	history, err := f.svc.GetHistory(ctx, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, ids[4], history[0].ID)
	assert.Equal(t, ids[3], history[1].ID)
	assert.Equal(t, ids[2], history[2].ID)
}

func TestAudit_StoredSpinMatchesReplay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledgerSvc.Adjust(ctx, "user-1", 10_000, domain.TxKindManual, "funding", "")
	require.NoError(t, err)

	result, err := f.svc.Spin(ctx, "user-1", "classic", 100)
	require.NoError(t, err)

	audit, err := f.svc.Audit(ctx, result.Record.ID)
	require.NoError(t, err)
	assert.True(t, audit.GridMatch)
	assert.True(t, audit.WinMatch)
	assert.Equal(t, audit.StoredWin, audit.ReplayWin)
}

func TestAudit_DetectsTamperedWin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledgerSvc.Adjust(ctx, "user-1", 10_000, domain.TxKindManual, "funding", "")
	require.NoError(t, err)

	result, err := f.svc.Spin(ctx, "user-1", "classic", 100)
	require.NoError(t, err)

	// Store a forged copy of the record with an inflated win.
	forged := *result.Record
	forged.ID = "forged-1"
	forged.Outcome.TotalWin += 9999
	forged.CreatedAt = time.Now()
	require.NoError(t, f.spins.CreateSpin(ctx, &forged))

	audit, err := f.svc.Audit(ctx, "forged-1")
	require.NoError(t, err)
	assert.True(t, audit.GridMatch)
	assert.False(t, audit.WinMatch)
	assert.Equal(t, forged.Outcome.TotalWin, audit.StoredWin)
	assert.Equal(t, result.Record.Outcome.TotalWin, audit.ReplayWin)
}

func TestAudit_UnknownSpin(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Audit(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSpinNotFound)
}
