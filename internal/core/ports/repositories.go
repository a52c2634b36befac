package ports

import (
	"context"
	"errors"
	"time"

	"wager-escrow-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicateActiveWallet is returned by WalletRepository.Create when
// another Active wallet already exists for the game. It means a
// concurrent caller won the issuance race; the loser re-reads and
// returns the winner's wallet.
var ErrDuplicateActiveWallet = errors.New("active wallet already exists for game")

// ErrNoActiveWallet is returned by status-transition methods when no
// Active wallet row matched: the wallet is absent or already terminal.
var ErrNoActiveWallet = errors.New("no active wallet for game")

// WalletRepository defines persistence operations for escrow wallets.
// The backing store must enforce uniqueness of (game_id) among Active
// rows so the issue-or-reuse check-then-act race resolves to a
// constraint violation rather than two wallets.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.EscrowWallet) error
	// GetActiveByGameID returns the most recently created Active wallet
	// with expires_at after now, or nil if none exists.
	GetActiveByGameID(ctx context.Context, gameID string, now time.Time) (*domain.EscrowWallet, error)
	GetByGameID(ctx context.Context, gameID string) (*domain.EscrowWallet, error)
	// GetActiveByGameIDForUpdate locks the Active wallet row for the
	// duration of a settlement transaction.
	GetActiveByGameIDForUpdate(ctx context.Context, tx pgx.Tx, gameID string) (*domain.EscrowWallet, error)
	// MarkSettled transitions Active -> Settled inside a transaction.
	MarkSettled(ctx context.Context, tx pgx.Tx, gameID string, settledAt time.Time) error
	// MarkExpired transitions Active -> Expired.
	MarkExpired(ctx context.Context, gameID string) error
}

// SettlementRepository persists settlement records. Records are
// append-only: there is no update or delete.
type SettlementRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.SettlementRecord) error
	GetByGameID(ctx context.Context, gameID string) (*domain.SettlementRecord, error)
	List(ctx context.Context, limit int) ([]domain.SettlementRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
