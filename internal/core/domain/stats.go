package domain

// EscrowStats is the process-wide settlement aggregate. All fields
// except CurrentBalance are monotonic. CurrentBalance is refreshed by
// polling the ledger and is eventually consistent; it must never
// feed a settlement decision.
type EscrowStats struct {
	TotalGames     int64 `json:"total_games"`
	TotalVolume    int64 `json:"total_volume"`
	TotalFees      int64 `json:"total_fees"`
	CurrentBalance int64 `json:"current_balance"`
}
