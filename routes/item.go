package routes

import (
	"github.com/gin-gonic/gin"

	itemControllers "github.com/shuvojit07/LuminaMarket/controllers/item"
	"github.com/shuvojit07/LuminaMarket/db"
	"github.com/shuvojit07/LuminaMarket/middleware"
)

func SetupItemRoutes(r *gin.Engine, store *db.Store) {
	items := r.Group("/api/items")
	{
		// Browse the catalog
		items.GET("", itemControllers.GetItems(store.Items))

		// Add an item (API-key-protected)
		items.POST("", middleware.SimpleAuth, itemControllers.CreateItem(store.Items))
	}
}
