package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"wager-escrow-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// Ed25519KeypairService implements ports.KeypairService. Custodial
// wallets are plain ed25519 keypairs; addresses and signatures use
// base58 encoding, matching the ledger network's keyspace.
type Ed25519KeypairService struct{}

// NewEd25519KeypairService creates a new keypair service.
func NewEd25519KeypairService() *Ed25519KeypairService {
	return &Ed25519KeypairService{}
}

// Generate creates a fresh custodial keypair.
func (s *Ed25519KeypairService) Generate() (*ports.Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating keypair: %w", err)
	}
	return &ports.Keypair{
		PublicAddress: base58.Encode(pub),
		Secret:        priv,
	}, nil
}

// transferPayload is the signed body of a transaction. The nonce
// makes every signing unique even for identical instruction sets.
type transferPayload struct {
	Instructions []ports.TransferInstruction `json:"instructions"`
	Nonce        string                      `json:"nonce"`
}

// signedTransaction is the wire envelope submitted to the ledger.
type signedTransaction struct {
	Payload   json.RawMessage `json:"payload"`
	Signer    string          `json:"signer"`
	Signature string          `json:"signature"`
}

// SignTransfers builds and signs a transaction covering the ordered
// instructions. Every instruction must spend from the signer's own
// address; the secret is used for the single Sign call and not
// retained.
func (s *Ed25519KeypairService) SignTransfers(secret []byte, instructions []ports.TransferInstruction) ([]byte, error) {
	if len(secret) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(secret))
	}
	if len(instructions) == 0 {
		return nil, fmt.Errorf("no transfer instructions")
	}

	priv := ed25519.PrivateKey(secret)
	signer := base58.Encode(priv.Public().(ed25519.PublicKey))
	for _, in := range instructions {
		if in.From != signer {
			return nil, fmt.Errorf("instruction spends from %s but signer is %s", in.From, signer)
		}
		if in.Amount <= 0 {
			return nil, fmt.Errorf("instruction amount must be positive, got %d", in.Amount)
		}
	}

	payload, err := json.Marshal(transferPayload{
		Instructions: instructions,
		Nonce:        uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	sig := ed25519.Sign(priv, payload)

	tx, err := json.Marshal(signedTransaction{
		Payload:   payload,
		Signer:    signer,
		Signature: base58.Encode(sig),
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling transaction: %w", err)
	}
	return tx, nil
}

// VerifySignedTransaction checks a transaction envelope's signature
// and returns its instructions. Used by tests and the administrative
// tooling; the ledger network performs the same check on its side.
func VerifySignedTransaction(raw []byte) ([]ports.TransferInstruction, string, error) {
	var tx signedTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, "", fmt.Errorf("unmarshaling transaction: %w", err)
	}

	pub, err := base58.Decode(tx.Signer)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return nil, "", fmt.Errorf("invalid signer address")
	}
	sig, err := base58.Decode(tx.Signature)
	if err != nil {
		return nil, "", fmt.Errorf("invalid signature encoding")
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), tx.Payload, sig) {
		return nil, "", fmt.Errorf("signature verification failed")
	}

	var payload transferPayload
	if err := json.Unmarshal(tx.Payload, &payload); err != nil {
		return nil, "", fmt.Errorf("unmarshaling payload: %w", err)
	}
	return payload.Instructions, tx.Signer, nil
}
