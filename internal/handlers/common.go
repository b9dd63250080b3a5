package handlers

import (
	"github.com/Vareni4/daggybot/internal/telegram"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty" example:"operation successful"`
}

// currentUser returns the verified Telegram identity set by the JWT
// middleware. Routes behind JWTAuth always have one.
func currentUser(c *gin.Context) telegram.WebAppUser {
	value, _ := c.Get("user")
	user, _ := value.(telegram.WebAppUser)
	return user
}
