package handlers

import (
	"net/http"

	"github.com/Vareni4/daggybot/internal/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	tournamentService *services.TournamentService
}

func NewTeamHandler(tournamentService *services.TournamentService) *TeamHandler {
	return &TeamHandler{tournamentService: tournamentService}
}

type CreateTeamRequest struct {
	NameRu string `json:"name_ru" binding:"required" example:"Спартак"`
}

// CreateTeam godoc
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTeamRequest true "Team data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Team name is required"})
		return
	}

	team, err := h.tournamentService.CreateTeam(req.NameRu)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"team_id": team.ID,
	})
}

// ListTeams godoc
// @Summary      List all teams
// @Tags         teams
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.tournamentService.GetTeams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"teams":   teams,
	})
}
