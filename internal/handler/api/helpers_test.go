//go:build unit

package api_test

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withUserFromHeader stands in for RequireAuth: any Authorization header authenticates as userID.
func withUserFromHeader(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
