package ports

import (
	"context"
	"time"

	"wager-escrow-service/internal/core/domain"
)

// Cipher handles AES-256-GCM encryption of custodial secrets. Unlike
// a fixed-key encryption service, the key is supplied per call: every
// wallet has its own derived key.
type Cipher interface {
	// Encrypt seals plaintext under the 32-byte hex key and returns
	// hex(nonce || ciphertext || tag).
	Encrypt(plaintext string, keyHex string) (string, error)
	// Decrypt opens a blob produced by Encrypt. A tag mismatch is an
	// error, never an empty string.
	Decrypt(blob string, keyHex string) (string, error)
}

// Keyring derives per-wallet encryption keys. Keys are never stored
// next to the ciphertext they protect.
type Keyring interface {
	// WalletKey returns the 32-byte hex encryption key for a game's
	// custodial secret.
	WalletKey(gameID string) (string, error)
}

// Keypair is a custodial ed25519 keypair. Secret is the raw private
// key; holders must zero it as soon as signing is done.
type Keypair struct {
	PublicAddress string // base58-encoded public key
	Secret        []byte
}

// TransferInstruction moves Amount base units from From to To.
type TransferInstruction struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// KeypairService generates and signs with custodial keypairs.
type KeypairService interface {
	Generate() (*Keypair, error)
	// SignTransfers builds a signed transaction covering the ordered
	// instructions. The secret is not retained after the call returns.
	SignTransfers(secret []byte, instructions []TransferInstruction) ([]byte, error)
}

// TransferInfo is the ledger's view of a finalized transfer.
type TransferInfo struct {
	PreBalances   []int64
	PostBalances  []int64
	Confirmations int64
}

// LedgerClient is the external ledger-network collaborator. It
// submits signed transactions and reports balances and confirmations;
// it does not interpret them.
type LedgerClient interface {
	GetBalance(ctx context.Context, address string) (int64, error)
	// GetTransaction returns nil, nil when the signature is unknown.
	GetTransaction(ctx context.Context, signature string) (*TransferInfo, error)
	SubmitTransaction(ctx context.Context, signedTx []byte) (string, error)
	// WaitForConfirmation blocks until the transfer reaches
	// minConfirmations or the client's configured timeout elapses
	// (apperror ConfirmationTimeout). A definitive ledger rejection is
	// apperror TransferFailed.
	WaitForConfirmation(ctx context.Context, signature string, minConfirmations int64) error
}

// RateLimiter throttles callers over a sliding window. State lives in
// process memory and resets on restart.
type RateLimiter interface {
	// IsRateLimited returns true without recording when the caller is
	// over budget; otherwise it records the request and returns false.
	IsRateLimited(key string) bool
	Reset(key string)
}

// WalletIssue is the result of issuing or reusing an escrow wallet.
type WalletIssue struct {
	PublicAddress string `json:"public_address"`
	// Ephemeral wallets exist only when the datastore is unreachable.
	// They are never persisted and cannot hold custody.
	Ephemeral bool `json:"ephemeral,omitempty"`
}

// EscrowRegistry owns the escrow wallet lifecycle: issuance,
// expiry, and the administrative secret-reveal used by sweeps.
type EscrowRegistry interface {
	IssueOrReuse(ctx context.Context, gameID string, callerKey string) (*WalletIssue, error)
	Expire(ctx context.Context, gameID string) error
	// RevealSecret returns the decrypted custodial secret of an
	// Expired wallet. Callers are expected to be behind admin auth.
	RevealSecret(ctx context.Context, gameID string) (string, error)
}

// GameTracker is the pre-settlement stake bookkeeping. It moves no
// funds and proves nothing about the ledger.
type GameTracker interface {
	RecordStake(gameID string, player string, amount int64) error
	MarkSettled(gameID string)
	// Get returns a copy of the state, or nil when the game is unknown.
	Get(gameID string) *domain.GameEscrowState
}

// SettlementEngine validates stakes against the ledger and performs
// confirmation-gated payouts and refunds.
type SettlementEngine interface {
	ValidateStake(ctx context.Context, signature string, expectedAmount int64) (bool, error)
	// Stake validates a player's transfer against the ledger and, only
	// on success, records it in the game tracker. Serialized with
	// Settle/Refund for the same game.
	Stake(ctx context.Context, gameID string, player string, amount int64, signature string) error
	Settle(ctx context.Context, gameID string, winnerAddress string) (*domain.SettlementRecord, error)
	Refund(ctx context.Context, gameID string) (*domain.SettlementRecord, error)
	Stats() domain.EscrowStats
	// RefreshBalance polls the ledger for the house balance and updates
	// the stats aggregate. Best-effort; never authoritative.
	RefreshBalance(ctx context.Context)
}

// SettlementCache is the fast-path lookup for completed settlements,
// so a re-invoked Settle returns the recorded outcome instead of
// touching the ledger again.
type SettlementCache interface {
	Get(ctx context.Context, gameID string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, gameID string, value []byte, ttl time.Duration) error
}

// HashService handles operator password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// TokenService handles JWT token operations for the admin surface.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// AuthService authenticates the operator for administrative calls.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
