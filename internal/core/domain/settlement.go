package domain

import (
	"time"

	"github.com/google/uuid"
)

// SettlementStatus classifies how a settlement record came to be.
type SettlementStatus string

const (
	SettlementStatusCompleted SettlementStatus = "COMPLETED"
	SettlementStatusRefunded  SettlementStatus = "REFUNDED"
)

// SettlementRecord is the immutable, append-only fact of a completed
// settlement or refund. It is written exactly once, after the transfer
// reached the required confirmation depth, and never updated.
type SettlementRecord struct {
	ID            uuid.UUID        `json:"id"`
	GameID        string           `json:"game_id"`
	Signature     string           `json:"signature"`
	WinnerAddress string           `json:"winner_address,omitempty"` // empty for refunds
	TotalAmount   int64            `json:"total_amount"`
	WinnerAmount  int64            `json:"winner_amount"`
	HouseAmount   int64            `json:"house_amount"`
	Status        SettlementStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}
