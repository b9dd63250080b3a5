package handlers

import (
	"net/http"

	"github.com/Vareni4/daggybot/internal/services"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
	userService       *services.UserService
}

func NewTournamentHandler(tournamentService *services.TournamentService, userService *services.UserService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService, userService: userService}
}

type CreateTournamentRequest struct {
	NameRu string `json:"name_ru" binding:"required" example:"Чемпионат мира"`
}

// CreateTournament godoc
// @Summary      Create a tournament
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTournamentRequest true "Tournament data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Tournament name is required"})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req.NameRu)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"tournament_id": tournament.ID,
	})
}

// ListTournaments godoc
// @Summary      List all tournaments
// @Tags         tournaments
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/tournaments [get]
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	tournaments, err := h.tournamentService.GetTournaments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"tournaments": tournaments,
	})
}

// AvailableTournaments godoc
// @Summary      List tournaments the user has not yet joined
// @Tags         tournaments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/tournaments/available [get]
func (h *TournamentHandler) AvailableTournaments(c *gin.Context) {
	user := currentUser(c)

	dbUser, err := h.userService.GetByTgID(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}

	tournaments, err := h.tournamentService.GetAvailableTournaments(dbUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"tournaments": tournaments,
	})
}
