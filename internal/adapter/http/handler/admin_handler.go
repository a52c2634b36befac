package handler

import (
	"strconv"

	"wager-escrow-service/internal/adapter/http/dto"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/pkg/apperror"
	"wager-escrow-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles operator-only escrow administration.
type AdminHandler struct {
	registry       ports.EscrowRegistry
	settlementRepo ports.SettlementRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(registry ports.EscrowRegistry, settlementRepo ports.SettlementRepository) *AdminHandler {
	return &AdminHandler{registry: registry, settlementRepo: settlementRepo}
}

// ExpireWallet handles POST /api/v1/admin/games/:game_id/expire.
func (h *AdminHandler) ExpireWallet(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.registry.Expire(c.Request.Context(), uri.GameID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"game_id": uri.GameID, "status": "EXPIRED"})
}

// RevealSecret handles GET /api/v1/admin/games/:game_id/secret. Only
// Expired wallets qualify; this exists for sweeping stranded funds.
func (h *AdminHandler) RevealSecret(c *gin.Context) {
	var uri dto.GameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	secret, err := h.registry.RevealSecret(c.Request.Context(), uri.GameID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SecretResponse{GameID: uri.GameID, Secret: secret})
}

// ListSettlements handles GET /api/v1/admin/settlements.
func (h *AdminHandler) ListSettlements(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			response.Error(c, apperror.Validation("limit must be an integer between 1 and 500"))
			return
		}
		limit = parsed
	}

	records, err := h.settlementRepo.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.ErrDatastoreUnavailable(err))
		return
	}

	items := make([]dto.SettlementResponse, 0, len(records))
	for i := range records {
		items = append(items, toSettlementResponse(&records[i]))
	}
	response.OK(c, dto.SettlementListResponse{Items: items})
}
