package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvojit07/LuminaMarket/db"
)

// SetupRoutes is the single entry-point that wires up the liveness, item,
// user, and order route groups.
func SetupRoutes(r *gin.Engine, store *db.Store) {
	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🚀 LuminaMarket Server Running")
	})

	SetupItemRoutes(r, store)

	SetupUserRoutes(r, store)

	SetupOrderRoutes(r, store)
}
