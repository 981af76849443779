package spin

import (
	"context"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/metrics"
)

// Audit replays a stored spin from its persisted seed and compares the
// regenerated grid and win against what was stored. A mismatch means either
// the stored record was tampered with or the theme changed since the spin;
// both are reportable findings, not errors.
func (s *service) Audit(ctx context.Context, spinID string) (*domain.AuditResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAuditCalled, "spinID", spinID)

	record, err := s.spins.GetSpin(ctx, spinID)
	if err != nil {
		return nil, err
	}

	themeCfg, err := s.themes.Get(record.Outcome.ThemeKey)
	if err != nil {
		return nil, err
	}

	replayed, err := s.engine.Replay(themeCfg, record.Outcome.BetAmount, record.Outcome.Seed)
	if err != nil {
		return nil, err
	}

	result := &domain.AuditResult{
		SpinID:    spinID,
		GridMatch: record.Outcome.Grid.Equal(replayed.Grid),
		WinMatch:  record.Outcome.TotalWin == replayed.TotalWin,
		StoredWin: record.Outcome.TotalWin,
		ReplayWin: replayed.TotalWin,
	}

	metrics.AuditReplays.Inc()
	if !result.GridMatch || !result.WinMatch {
		metrics.AuditMismatches.Inc()
		log.Warn(LogMsgAuditMismatch,
			"spinID", spinID,
			"gridMatch", result.GridMatch,
			"storedWin", result.StoredWin,
			"replayWin", result.ReplayWin)
	}

	return result, nil
}
