package handler

import (
	"time"

	"wager-escrow-service/internal/adapter/http/dto"
	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/pkg/apperror"
	"wager-escrow-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// EscrowHandler handles the game escrow endpoints.
type EscrowHandler struct {
	registry       ports.EscrowRegistry
	engine         ports.SettlementEngine
	tracker        ports.GameTracker
	settlementRepo ports.SettlementRepository
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(
	registry ports.EscrowRegistry,
	engine ports.SettlementEngine,
	tracker ports.GameTracker,
	settlementRepo ports.SettlementRepository,
) *EscrowHandler {
	return &EscrowHandler{
		registry:       registry,
		engine:         engine,
		tracker:        tracker,
		settlementRepo: settlementRepo,
	}
}

// IssueWallet handles POST /api/v1/games/:game_id/wallet. Repeated
// calls for the same game return the same Active wallet address.
func (h *EscrowHandler) IssueWallet(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	issue, err := h.registry.IssueOrReuse(c.Request.Context(), uri.GameID, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.WalletResponse{
		GameID:        uri.GameID,
		PublicAddress: issue.PublicAddress,
		Ephemeral:     issue.Ephemeral,
	})
}

// Stake handles POST /api/v1/games/:game_id/stakes.
func (h *EscrowHandler) Stake(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.engine.Stake(c.Request.Context(), uri.GameID, req.PlayerAddress, req.Amount, req.Signature); err != nil {
		response.Error(c, err)
		return
	}

	state := h.tracker.Get(uri.GameID)
	response.Created(c, toGameStateResponse(uri.GameID, state))
}

// GetGame handles GET /api/v1/games/:game_id.
func (h *EscrowHandler) GetGame(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	state := h.tracker.Get(uri.GameID)
	if state == nil {
		response.Error(c, apperror.ErrGameNotFound())
		return
	}

	response.OK(c, toGameStateResponse(uri.GameID, state))
}

// Settle handles POST /api/v1/games/:game_id/settle.
func (h *EscrowHandler) Settle(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	record, err := h.engine.Settle(c.Request.Context(), uri.GameID, req.WinnerAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(record))
}

// Refund handles POST /api/v1/games/:game_id/refund.
func (h *EscrowHandler) Refund(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.engine.Refund(c.Request.Context(), uri.GameID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(record))
}

// GetSettlement handles GET /api/v1/games/:game_id/settlement.
func (h *EscrowHandler) GetSettlement(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.settlementRepo.GetByGameID(c.Request.Context(), uri.GameID)
	if err != nil {
		response.Error(c, apperror.ErrDatastoreUnavailable(err))
		return
	}
	if record == nil {
		response.Error(c, apperror.ErrGameNotFound())
		return
	}

	response.OK(c, toSettlementResponse(record))
}

// GetStats handles GET /api/v1/stats.
func (h *EscrowHandler) GetStats(c *gin.Context) {
	stats := h.engine.Stats()
	response.OK(c, dto.StatsResponse{
		TotalGames:     stats.TotalGames,
		TotalVolume:    stats.TotalVolume,
		TotalFees:      stats.TotalFees,
		CurrentBalance: stats.CurrentBalance,
	})
}

func toGameStateResponse(gameID string, state *domain.GameEscrowState) dto.GameStateResponse {
	resp := dto.GameStateResponse{
		GameID:  gameID,
		Players: []string{},
		Stakes:  []int64{},
	}
	if state != nil {
		resp.Players = state.Players
		resp.Stakes = state.Stakes
		resp.TotalStake = state.TotalStake
		resp.IsActive = state.IsActive
	}
	return resp
}

func toSettlementResponse(rec *domain.SettlementRecord) dto.SettlementResponse {
	return dto.SettlementResponse{
		ID:            rec.ID.String(),
		GameID:        rec.GameID,
		Signature:     rec.Signature,
		WinnerAddress: rec.WinnerAddress,
		TotalAmount:   rec.TotalAmount,
		WinnerAmount:  rec.WinnerAmount,
		HouseAmount:   rec.HouseAmount,
		Status:        string(rec.Status),
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
}
