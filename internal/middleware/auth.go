package middleware

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.AccountID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("accountID", claims.AccountID)
		c.Next()
	}
}

// GetAccountID извлекает ID аккаунта из контекста
func GetAccountID(c *gin.Context) string {
	accountID, exists := c.Get("accountID")
	if !exists {
		return ""
	}

	id, ok := accountID.(string)
	if !ok {
		return ""
	}

	return id
}
