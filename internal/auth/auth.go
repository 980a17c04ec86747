package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Header carries the shared admin secret.
const Header = "X-RINA-KEY"

// RequireAdmin guards administrative endpoints. With no key configured the
// check is disabled and every caller is allowed.
func RequireAdmin(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.Next()
			return
		}
		if c.GetHeader(Header) != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
