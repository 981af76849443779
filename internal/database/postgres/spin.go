package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// SpinRepository implements repository.Spin for PostgreSQL. The full outcome
// is stored as JSONB; theme, bet and win are denormalized into columns so
// history queries and reporting don't have to unpack the document.
type SpinRepository struct {
	db *pgxpool.Pool
}

// NewSpinRepository creates a new SpinRepository
func NewSpinRepository(db *pgxpool.Pool) *SpinRepository {
	return &SpinRepository{db: db}
}

// CreateSpin persists a spin record, assigning ID and timestamp when absent
func (r *SpinRepository) CreateSpin(ctx context.Context, record *domain.SpinRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	outcome, err := json.Marshal(record.Outcome)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalOutcomeFailed, err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO spins (spin_id, user_id, theme_key, bet_amount, total_win, outcome, settled, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.UserID, record.Outcome.ThemeKey, record.Outcome.BetAmount,
		record.Outcome.TotalWin, outcome, record.Settled, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertSpinFailed, err)
	}
	return nil
}

// GetSpin returns a spin record by ID
func (r *SpinRepository) GetSpin(ctx context.Context, id string) (*domain.SpinRecord, error) {
	record := domain.SpinRecord{ID: id}
	var outcome []byte
	err := r.db.QueryRow(ctx,
		`SELECT user_id, outcome, settled, created_at FROM spins WHERE spin_id = $1`,
		id,
	).Scan(&record.UserID, &outcome, &record.Settled, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpinNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetSpinFailed, err)
	}
	if err := json.Unmarshal(outcome, &record.Outcome); err != nil {
		return nil, fmt.Errorf(ErrMsgUnmarshalOutcomeFailed, err)
	}
	return &record, nil
}

// GetSpinsByUser returns the user's most recent spins, newest first
func (r *SpinRepository) GetSpinsByUser(ctx context.Context, userID string, limit int) ([]domain.SpinRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT spin_id, user_id, outcome, settled, created_at
		 FROM spins
		 WHERE user_id = $1
		 ORDER BY created_at DESC, spin_id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySpinsFailed, err)
	}
	defer rows.Close()
	return collectSpinRows(rows)
}

// GetRecentSpins returns the most recent spins across all users, newest first
func (r *SpinRepository) GetRecentSpins(ctx context.Context, limit int) ([]domain.SpinRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT spin_id, user_id, outcome, settled, created_at
		 FROM spins
		 ORDER BY created_at DESC, spin_id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySpinsFailed, err)
	}
	defer rows.Close()
	return collectSpinRows(rows)
}

func collectSpinRows(rows pgx.Rows) ([]domain.SpinRecord, error) {
	var records []domain.SpinRecord
	for rows.Next() {
		var (
			record  domain.SpinRecord
			outcome []byte
		)
		if err := rows.Scan(&record.ID, &record.UserID, &outcome, &record.Settled, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgQuerySpinsFailed, err)
		}
		if err := json.Unmarshal(outcome, &record.Outcome); err != nil {
			return nil, fmt.Errorf(ErrMsgUnmarshalOutcomeFailed, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySpinsFailed, err)
	}
	return records, nil
}
