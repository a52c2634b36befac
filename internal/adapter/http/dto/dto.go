package dto

// GameURI binds the :game_id path parameter.
type GameURI struct {
	GameID string `uri:"game_id" binding:"required,safe_id,max=64"`
}

// StakeRequest is the request body for recording a validated stake.
type StakeRequest struct {
	PlayerAddress string `json:"player_address" binding:"required,min=32,max=64"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Signature     string `json:"signature" binding:"required,max=128"`
}

// SettleRequest is the request body for settling a game.
type SettleRequest struct {
	WinnerAddress string `json:"winner_address" binding:"required,min=32,max=64"`
}

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// WalletResponse is the response body for wallet issuance.
type WalletResponse struct {
	GameID        string `json:"game_id"`
	PublicAddress string `json:"public_address"`
	Ephemeral     bool   `json:"ephemeral,omitempty"`
}

// GameStateResponse is the response body for game state queries.
type GameStateResponse struct {
	GameID     string   `json:"game_id"`
	Players    []string `json:"players"`
	Stakes     []int64  `json:"stakes"`
	TotalStake int64    `json:"total_stake"`
	IsActive   bool     `json:"is_active"`
}

// SettlementResponse is the response body for settlement results.
type SettlementResponse struct {
	ID            string `json:"id"`
	GameID        string `json:"game_id"`
	Signature     string `json:"signature"`
	WinnerAddress string `json:"winner_address,omitempty"`
	TotalAmount   int64  `json:"total_amount"`
	WinnerAmount  int64  `json:"winner_amount"`
	HouseAmount   int64  `json:"house_amount"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// SettlementListResponse wraps a settlement history listing.
type SettlementListResponse struct {
	Items []SettlementResponse `json:"items"`
}

// StatsResponse is the response body for aggregate statistics.
type StatsResponse struct {
	TotalGames     int64 `json:"total_games"`
	TotalVolume    int64 `json:"total_volume"`
	TotalFees      int64 `json:"total_fees"`
	CurrentBalance int64 `json:"current_balance"`
}

// SecretResponse is the response body for an administrative sweep of
// an expired wallet.
type SecretResponse struct {
	GameID string `json:"game_id"`
	Secret string `json:"secret"`
}
