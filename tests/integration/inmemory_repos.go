package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

// inMemoryWalletRepo mirrors the postgres repo's contract, including
// the partial unique constraint on (game_id) among Active rows.
type inMemoryWalletRepo struct {
	mu      sync.Mutex
	wallets []*domain.EscrowWallet // insertion order
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, wallet *domain.EscrowWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.GameID == wallet.GameID && w.Status == domain.WalletStatusActive {
			return ports.ErrDuplicateActiveWallet
		}
	}
	cp := *wallet
	r.wallets = append(r.wallets, &cp)
	return nil
}

func (r *inMemoryWalletRepo) GetActiveByGameID(ctx context.Context, gameID string, now time.Time) (*domain.EscrowWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.wallets) - 1; i >= 0; i-- {
		w := r.wallets[i]
		if w.GameID == gameID && w.Status == domain.WalletStatusActive && now.Before(w.ExpiresAt) {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByGameID(ctx context.Context, gameID string) (*domain.EscrowWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.wallets) - 1; i >= 0; i-- {
		if r.wallets[i].GameID == gameID {
			cp := *r.wallets[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetActiveByGameIDForUpdate(ctx context.Context, tx pgx.Tx, gameID string) (*domain.EscrowWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.wallets) - 1; i >= 0; i-- {
		w := r.wallets[i]
		if w.GameID == gameID && w.Status == domain.WalletStatusActive {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) MarkSettled(ctx context.Context, tx pgx.Tx, gameID string, settledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.wallets) - 1; i >= 0; i-- {
		w := r.wallets[i]
		if w.GameID == gameID && w.Status == domain.WalletStatusActive {
			w.Status = domain.WalletStatusSettled
			t := settledAt
			w.SettledAt = &t
			return nil
		}
	}
	return ports.ErrNoActiveWallet
}

func (r *inMemoryWalletRepo) MarkExpired(ctx context.Context, gameID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.wallets) - 1; i >= 0; i-- {
		w := r.wallets[i]
		if w.GameID == gameID && w.Status == domain.WalletStatusActive {
			w.Status = domain.WalletStatusExpired
			return nil
		}
	}
	return ports.ErrNoActiveWallet
}

// countByGame is a test-only accessor.
func (r *inMemoryWalletRepo) countByGame(gameID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, w := range r.wallets {
		if w.GameID == gameID {
			n++
		}
	}
	return n
}

// --- In-Memory Settlement Repo ---

type inMemorySettlementRepo struct {
	mu      sync.Mutex
	records []domain.SettlementRecord
}

func newInMemorySettlementRepo() *inMemorySettlementRepo {
	return &inMemorySettlementRepo{}
}

func (r *inMemorySettlementRepo) Create(ctx context.Context, tx pgx.Tx, record *domain.SettlementRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *inMemorySettlementRepo) GetByGameID(ctx context.Context, gameID string) (*domain.SettlementRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].GameID == gameID {
			cp := r.records[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemorySettlementRepo) List(ctx context.Context, limit int) ([]domain.SettlementRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SettlementRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *inMemorySettlementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Fake Ledger ---

// fakeLedger implements ports.LedgerClient against an in-memory
// balance table. Submitted transactions are verified (signature and
// signer address) and their instructions applied, so a settlement
// test observes actual balance movement end-to-end.
type fakeLedger struct {
	mu        sync.Mutex
	balances  map[string]int64
	transfers map[string]*ports.TransferInfo
	submitted int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		balances:  make(map[string]int64),
		transfers: make(map[string]*ports.TransferInfo),
	}
}

func (l *fakeLedger) setBalance(address string, balance int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[address] = balance
}

// addTransfer registers a finalized transfer the engine can validate
// stakes against. The sender-side delta is pre[0]-post[0].
func (l *fakeLedger) addTransfer(signature string, pre, post []int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transfers[signature] = &ports.TransferInfo{
		PreBalances:   pre,
		PostBalances:  post,
		Confirmations: 32,
	}
}

func (l *fakeLedger) submissions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.submitted
}

func (l *fakeLedger) GetBalance(ctx context.Context, address string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[address], nil
}

func (l *fakeLedger) GetTransaction(ctx context.Context, signature string) (*ports.TransferInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	info, ok := l.transfers[signature]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

func (l *fakeLedger) SubmitTransaction(ctx context.Context, signedTx []byte) (string, error) {
	instructions, signer, err := service.VerifySignedTransaction(signedTx)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, in := range instructions {
		if in.From != signer {
			return "", fmt.Errorf("instruction from %s not covered by signer %s", in.From, signer)
		}
		l.balances[in.From] -= in.Amount
		l.balances[in.To] += in.Amount
	}
	l.submitted++
	return fmt.Sprintf("ledger-sig-%d", l.submitted), nil
}

func (l *fakeLedger) WaitForConfirmation(ctx context.Context, signature string, minConfirmations int64) error {
	return nil
}
