package postgres

import (
	"context"
	"errors"
	"fmt"

	"wager-escrow-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const settlementColumns = `id, game_id, signature, winner_address, total_amount, winner_amount, house_amount, status, created_at`

// SettlementRepo implements ports.SettlementRepository. The table is
// append-only; outcomes are never rewritten.
type SettlementRepo struct {
	pool Pool
}

// NewSettlementRepo creates a new SettlementRepo.
func NewSettlementRepo(pool Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

// Create inserts a settlement record within a transaction.
func (r *SettlementRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.SettlementRecord) error {
	query := `INSERT INTO escrow_settlements (id, game_id, signature, winner_address, total_amount, winner_amount, house_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.GameID, rec.Signature, rec.WinnerAddress,
		rec.TotalAmount, rec.WinnerAmount, rec.HouseAmount,
		rec.Status, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settlement record: %w", err)
	}
	return nil
}

// GetByGameID fetches the settlement record for a game, or nil.
func (r *SettlementRepo) GetByGameID(ctx context.Context, gameID string) (*domain.SettlementRecord, error) {
	query := `SELECT ` + settlementColumns + ` FROM escrow_settlements WHERE game_id = $1`

	rec := &domain.SettlementRecord{}
	err := r.pool.QueryRow(ctx, query, gameID).Scan(
		&rec.ID, &rec.GameID, &rec.Signature, &rec.WinnerAddress,
		&rec.TotalAmount, &rec.WinnerAmount, &rec.HouseAmount,
		&rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settlement by game id: %w", err)
	}
	return rec, nil
}

// List returns the most recent settlement records.
func (r *SettlementRepo) List(ctx context.Context, limit int) ([]domain.SettlementRecord, error) {
	query := `SELECT ` + settlementColumns + ` FROM escrow_settlements
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	defer rows.Close()

	var records []domain.SettlementRecord
	for rows.Next() {
		var rec domain.SettlementRecord
		if err := rows.Scan(
			&rec.ID, &rec.GameID, &rec.Signature, &rec.WinnerAddress,
			&rec.TotalAmount, &rec.WinnerAmount, &rec.HouseAmount,
			&rec.Status, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan settlement row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlements: %w", err)
	}
	return records, nil
}
