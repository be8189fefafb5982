package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/shuvojit07/LuminaMarket/controllers/order"
	"github.com/shuvojit07/LuminaMarket/db"
)

func SetupOrderRoutes(r *gin.Engine, store *db.Store) {
	orders := r.Group("/api/orders")
	{
		// Create a new order
		orders.POST("", orderControllers.PlaceOrder(store.Orders))

		// Fetch all orders (dashboard)
		orders.GET("", orderControllers.GetAllOrders(store.Orders))

		// Fetch orders for a specific user
		orders.GET("/:email", orderControllers.GetUserOrders(store.Orders))
	}
}
