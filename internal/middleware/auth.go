package middleware

import (
	"net/http"
	"strings"

	"github.com/Vareni4/daggybot/internal/services"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the Bearer session token and stores the verified
// Telegram identity in the request context. All failures produce the same
// 401; the caller learns nothing about which check failed.
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("user", claims.User)
		c.Set("tg_id", claims.User.ID)
		c.Next()
	}
}

// AdminOnly gates a route on the admin set. It must run after JWTAuth.
func AdminOnly(policy *services.AccessPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		tgID := c.GetInt64("tg_id")
		if !policy.IsAdmin(tgID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
