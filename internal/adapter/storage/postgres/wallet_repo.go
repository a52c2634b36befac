package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const walletColumns = `id, game_id, public_address, encrypted_secret, status, created_at, expires_at, settled_at`

// WalletRepo implements ports.WalletRepository. The escrow_wallets
// table carries a partial unique index on (game_id) WHERE status =
// 'ACTIVE', which is what turns the issue-or-reuse race into a
// constraint violation instead of two custodial wallets.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new escrow wallet.
func (r *WalletRepo) Create(ctx context.Context, w *domain.EscrowWallet) error {
	query := `INSERT INTO escrow_wallets (id, game_id, public_address, encrypted_secret, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.GameID, w.PublicAddress, w.EncryptedSecret,
		w.Status, w.CreatedAt, w.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ports.ErrDuplicateActiveWallet
		}
		return fmt.Errorf("insert escrow wallet: %w", err)
	}
	return nil
}

// GetActiveByGameID fetches the game's current Active, unexpired wallet.
func (r *WalletRepo) GetActiveByGameID(ctx context.Context, gameID string, now time.Time) (*domain.EscrowWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM escrow_wallets
		WHERE game_id = $1 AND status = 'ACTIVE' AND expires_at > $2
		ORDER BY created_at DESC LIMIT 1`

	w := &domain.EscrowWallet{}
	err := r.pool.QueryRow(ctx, query, gameID, now).Scan(
		&w.ID, &w.GameID, &w.PublicAddress, &w.EncryptedSecret,
		&w.Status, &w.CreatedAt, &w.ExpiresAt, &w.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active wallet: %w", err)
	}
	return w, nil
}

// GetByGameID fetches the game's most recent wallet regardless of status.
func (r *WalletRepo) GetByGameID(ctx context.Context, gameID string) (*domain.EscrowWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM escrow_wallets
		WHERE game_id = $1
		ORDER BY created_at DESC LIMIT 1`

	w := &domain.EscrowWallet{}
	err := r.pool.QueryRow(ctx, query, gameID).Scan(
		&w.ID, &w.GameID, &w.PublicAddress, &w.EncryptedSecret,
		&w.Status, &w.CreatedAt, &w.ExpiresAt, &w.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by game id: %w", err)
	}
	return w, nil
}

// GetActiveByGameIDForUpdate fetches the Active wallet with pessimistic
// locking. This MUST be called within a transaction.
func (r *WalletRepo) GetActiveByGameIDForUpdate(ctx context.Context, tx pgx.Tx, gameID string) (*domain.EscrowWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM escrow_wallets
		WHERE game_id = $1 AND status = 'ACTIVE'
		ORDER BY created_at DESC LIMIT 1 FOR UPDATE`

	w := &domain.EscrowWallet{}
	err := tx.QueryRow(ctx, query, gameID).Scan(
		&w.ID, &w.GameID, &w.PublicAddress, &w.EncryptedSecret,
		&w.Status, &w.CreatedAt, &w.ExpiresAt, &w.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active wallet for update: %w", err)
	}
	return w, nil
}

// MarkSettled transitions the game's Active wallet to Settled within a
// transaction. Returns ports.ErrNoActiveWallet when no row matched.
func (r *WalletRepo) MarkSettled(ctx context.Context, tx pgx.Tx, gameID string, settledAt time.Time) error {
	query := `UPDATE escrow_wallets SET status = 'SETTLED', settled_at = $1
		WHERE game_id = $2 AND status = 'ACTIVE'`

	tag, err := tx.Exec(ctx, query, settledAt, gameID)
	if err != nil {
		return fmt.Errorf("mark wallet settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNoActiveWallet
	}
	return nil
}

// MarkExpired transitions the game's Active wallet to Expired. Returns
// ports.ErrNoActiveWallet when no row matched.
func (r *WalletRepo) MarkExpired(ctx context.Context, gameID string) error {
	query := `UPDATE escrow_wallets SET status = 'EXPIRED'
		WHERE game_id = $1 AND status = 'ACTIVE'`

	tag, err := r.pool.Exec(ctx, query, gameID)
	if err != nil {
		return fmt.Errorf("mark wallet expired: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNoActiveWallet
	}
	return nil
}
