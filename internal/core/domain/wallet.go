package domain

import (
	"time"

	"github.com/google/uuid"
)

// WalletStatus represents the lifecycle state of an escrow wallet.
type WalletStatus string

const (
	WalletStatusActive  WalletStatus = "ACTIVE"
	WalletStatusSettled WalletStatus = "SETTLED"
	WalletStatusExpired WalletStatus = "EXPIRED"
)

// EscrowWallet is a per-game custodial keypair record. The secret key
// is stored AES-256-GCM encrypted; the encryption key itself is never
// persisted; it is derived from the operator master key and the game
// ID at decryption time.
type EscrowWallet struct {
	ID              uuid.UUID    `json:"id"`
	GameID          string       `json:"game_id"`
	PublicAddress   string       `json:"public_address"`
	EncryptedSecret string       `json:"-"` // hex(nonce || ciphertext || tag)
	Status          WalletStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	ExpiresAt       time.Time    `json:"expires_at"`
	SettledAt       *time.Time   `json:"settled_at,omitempty"`
}

// IsUsable reports whether the wallet may hold custody at the given
// instant: Active and not yet past its expiry.
func (w *EscrowWallet) IsUsable(now time.Time) bool {
	return w.Status == WalletStatusActive && now.Before(w.ExpiresAt)
}

// IsTerminal reports whether the wallet has reached a final state.
// Settled and Expired are both terminal; there are no transitions out.
func (w *EscrowWallet) IsTerminal() bool {
	return w.Status == WalletStatusSettled || w.Status == WalletStatusExpired
}
