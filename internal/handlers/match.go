package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Vareni4/daggybot/internal/services"
	"github.com/Vareni4/daggybot/internal/ws"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
	userService  *services.UserService
	hub          *ws.Hub
}

func NewMatchHandler(matchService *services.MatchService, userService *services.UserService, hub *ws.Hub) *MatchHandler {
	return &MatchHandler{matchService: matchService, userService: userService, hub: hub}
}

type CreateMatchRequest struct {
	TournamentID uint   `json:"tournament_id" binding:"required"`
	Team1ID      uint   `json:"team_1_id" binding:"required"`
	Team2ID      uint   `json:"team_2_id" binding:"required"`
	Date         string `json:"date" binding:"required" example:"2026-06-14T18:00:00Z"`
}

// CreateMatch godoc
// @Summary      Create a match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMatchRequest true "Match data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format"})
		return
	}

	match, err := h.matchService.CreateMatch(req.TournamentID, req.Team1ID, req.Team2ID, start)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTournamentNotFound), errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventMatchCreated, Data: match})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"match_id": match.ID,
	})
}

// ListMatches godoc
// @Summary      List all matches
// @Tags         matches
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.GetMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}

// MyMatches godoc
// @Summary      List the user's matches with their bets
// @Description  Matches of tournaments where the user has an approved participation
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/matches/mine [get]
func (h *MatchHandler) MyMatches(c *gin.Context) {
	user := currentUser(c)

	dbUser, err := h.userService.GetByTgID(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}

	matches, err := h.matchService.GetUserMatches(dbUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}
