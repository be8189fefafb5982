package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/shuvojit07/LuminaMarket/controllers/user"
	"github.com/shuvojit07/LuminaMarket/db"
)

func SetupUserRoutes(r *gin.Engine, store *db.Store) {
	users := r.Group("/api/users")
	{
		// Idempotent upsert on login
		users.POST("/sync", userControllers.SyncUser(store.Users))

		// Fetch a user profile; unknown uid responds with null
		users.GET("/:uid", userControllers.GetUser(store.Users))
	}
}
