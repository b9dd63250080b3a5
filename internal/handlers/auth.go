package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Vareni4/daggybot/internal/services"
	"github.com/Vareni4/daggybot/internal/telegram"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type InitRequest struct {
	InitData string `json:"initData" binding:"required"`
}

type InitResponse struct {
	Status        string               `json:"status" example:"success"`
	Authenticated bool                 `json:"authenticated"`
	Token         *string              `json:"token"`
	IsAdmin       bool                 `json:"is_admin"`
	UserData      *telegram.WebAppUser `json:"user_data"`
}

// Init godoc
// @Summary      Initialize the mini app
// @Description  Verify Telegram initData and issue a session token to authorized users
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body InitRequest true "Telegram launch payload"
// @Success      200 {object} InitResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/init [post]
func (h *AuthHandler) Init(c *gin.Context) {
	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No initData provided"})
		return
	}

	result, err := h.authService.Launch(req.InitData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInitData):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Telegram data"})
		case errors.Is(err, services.ErrInvalidUserData):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid user data"})
		default:
			log.Printf("init: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		return
	}

	var token *string
	if result.Token != "" {
		token = &result.Token
	}

	c.JSON(http.StatusOK, InitResponse{
		Status:        "success",
		Authenticated: result.Authenticated,
		Token:         token,
		IsAdmin:       result.IsAdmin,
		UserData:      result.User,
	})
}
