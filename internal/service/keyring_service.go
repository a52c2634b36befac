package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDFKeyring implements ports.Keyring by deriving each wallet's
// AES key from an operator-held master key and the game ID. Nothing
// derived here is ever persisted: whoever can read the wallet table
// still cannot decrypt a custodial secret without the master key.
type HKDFKeyring struct {
	master []byte
}

// NewHKDFKeyring creates a keyring from a 64-char hex master key.
func NewHKDFKeyring(masterHex string) (*HKDFKeyring, error) {
	master, err := hex.DecodeString(masterHex)
	if err != nil {
		return nil, fmt.Errorf("decoding master key: %w", err)
	}
	if len(master) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes, got %d", len(master))
	}
	return &HKDFKeyring{master: master}, nil
}

// WalletKey derives the 32-byte hex encryption key for a game's
// custodial secret. Derivation is deterministic: the same master key
// and game ID always yield the same wallet key.
func (k *HKDFKeyring) WalletKey(gameID string) (string, error) {
	r := hkdf.New(sha256.New, k.master, []byte(gameID), []byte("escrow-wallet-secret"))

	key := make([]byte, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		return "", fmt.Errorf("deriving wallet key: %w", err)
	}
	return hex.EncodeToString(key), nil
}
