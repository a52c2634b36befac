package domain

// GameEscrowState is the in-memory bookkeeping for a game's stakes
// before settlement. It never proves that funds arrived; the
// settlement engine validates transfers against the ledger; this
// struct only remembers who staked what, in join order.
type GameEscrowState struct {
	GameID     string   `json:"game_id"`
	Players    []string `json:"players"` // join order, no duplicates
	Stakes     []int64  `json:"stakes"`  // parallel to Players
	TotalStake int64    `json:"total_stake"`
	IsActive   bool     `json:"is_active"`
}

// HasPlayer reports whether the player already staked in this game.
func (g *GameEscrowState) HasPlayer(player string) bool {
	for _, p := range g.Players {
		if p == player {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate tracked state.
func (g *GameEscrowState) Clone() *GameEscrowState {
	c := &GameEscrowState{
		GameID:     g.GameID,
		Players:    make([]string, len(g.Players)),
		Stakes:     make([]int64, len(g.Stakes)),
		TotalStake: g.TotalStake,
		IsActive:   g.IsActive,
	}
	copy(c.Players, g.Players)
	copy(c.Stakes, g.Stakes)
	return c
}
