package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vareni4/daggybot/internal/services"
	"github.com/Vareni4/daggybot/internal/ws"

	"github.com/gin-gonic/gin"
)

type ParticipationHandler struct {
	participationService *services.ParticipationService
	userService          *services.UserService
	hub                  *ws.Hub
}

func NewParticipationHandler(participationService *services.ParticipationService, userService *services.UserService, hub *ws.Hub) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
		userService:          userService,
		hub:                  hub,
	}
}

type ParticipateRequest struct {
	TournamentID uint `json:"tournament_id" binding:"required"`
}

// Participate godoc
// @Summary      Request participation in a tournament
// @Description  Creates the user record on first contact; the request waits for admin approval
// @Tags         participations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ParticipateRequest true "Tournament to join"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participations [post]
func (h *ParticipationHandler) Participate(c *gin.Context) {
	var req ParticipateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Tournament ID is required"})
		return
	}

	user := currentUser(c)
	dbUser, err := h.userService.GetOrCreate(user.ID, user.DisplayName())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	_, err = h.participationService.Participate(dbUser.ID, req.TournamentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrAlreadyParticipating):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Participation request submitted"})
}

// Pending godoc
// @Summary      List pending participation requests
// @Tags         participations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/participations/pending [get]
func (h *ParticipationHandler) Pending(c *gin.Context) {
	pending, err := h.participationService.GetPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"participations": pending,
	})
}

// Approve godoc
// @Summary      Approve a participation request
// @Tags         participations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Participation ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participations/{id}/approve [post]
func (h *ParticipationHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participation id"})
		return
	}

	participation, err := h.participationService.Approve(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrParticipationNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventParticipationApproved, Data: participation})

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Participation approved"})
}
