package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Vareni4/daggybot/internal/services"
	"github.com/Vareni4/daggybot/internal/ws"

	"github.com/gin-gonic/gin"
)

type BetHandler struct {
	betService  *services.BetService
	userService *services.UserService
	hub         *ws.Hub
}

func NewBetHandler(betService *services.BetService, userService *services.UserService, hub *ws.Hub) *BetHandler {
	return &BetHandler{betService: betService, userService: userService, hub: hub}
}

// Score fields are pointers so a predicted 0:0 passes required validation.
type PlaceBetRequest struct {
	MatchID uint `json:"match_id" binding:"required"`
	Score1  *int `json:"score_1" binding:"required"`
	Score2  *int `json:"score_2" binding:"required"`
}

// PlaceBet godoc
// @Summary      Place or update a bet on a match
// @Description  One bet per user and match; re-placing overwrites the scores. Rejected once the match has started or without an approved participation.
// @Tags         bets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlaceBetRequest true "Bet data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/bets [post]
func (h *BetHandler) PlaceBet(c *gin.Context) {
	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	user := currentUser(c)
	dbUser, err := h.userService.GetByTgID(user.ID)
	if err != nil {
		// No user record means no approved participation either.
		c.JSON(http.StatusForbidden, ErrorResponse{Error: services.ErrNotParticipant.Error()})
		return
	}

	bet, err := h.betService.Place(dbUser.ID, req.MatchID, *req.Score1, *req.Score2, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrMatchStarted):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrNotParticipant):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventBetPlaced, Data: gin.H{
		"match_id": bet.MatchID,
		"user_id":  bet.UserID,
	}})

	c.JSON(http.StatusOK, MessageResponse{Success: true})
}
