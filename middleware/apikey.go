package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiKey is the shared secret the storefront sends on item creation. It is a
// plain header comparison, not per-user authentication.
const apiKey = "12345"

func SimpleAuth(c *gin.Context) {
	if c.GetHeader("x-api-key") != apiKey {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not allowed"})
		c.Abort()
		return
	}
	c.Next()
}
