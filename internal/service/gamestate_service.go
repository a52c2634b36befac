package service

import (
	"sync"

	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/pkg/apperror"
)

// GameStateTracker implements ports.GameTracker: in-memory,
// mutex-guarded stake bookkeeping per game. It is created at process
// start and passed to its consumers explicitly; there is no ambient
// singleton. It never moves funds and is never treated as proof that
// a transfer occurred.
type GameStateTracker struct {
	mu    sync.Mutex
	games map[string]*domain.GameEscrowState
}

// NewGameStateTracker creates an empty tracker.
func NewGameStateTracker() *GameStateTracker {
	return &GameStateTracker{games: make(map[string]*domain.GameEscrowState)}
}

// RecordStake appends a player's validated stake. A player address
// appears at most once per game.
func (t *GameStateTracker) RecordStake(gameID string, player string, amount int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.games[gameID]
	if !ok {
		state = &domain.GameEscrowState{GameID: gameID, IsActive: true}
		t.games[gameID] = state
	}

	if state.HasPlayer(player) {
		return apperror.ErrDuplicateStake()
	}

	state.Players = append(state.Players, player)
	state.Stakes = append(state.Stakes, amount)
	state.TotalStake += amount
	return nil
}

// MarkSettled deactivates a game's state. Safe to call more than once.
func (t *GameStateTracker) MarkSettled(gameID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state, ok := t.games[gameID]; ok {
		state.IsActive = false
	}
}

// Get returns a copy of a game's state, or nil when unknown.
func (t *GameStateTracker) Get(gameID string) *domain.GameEscrowState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.games[gameID]
	if !ok {
		return nil
	}
	return state.Clone()
}
