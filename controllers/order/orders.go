package orderControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvojit07/LuminaMarket/models"
)

// OrderStore is the slice of the storage layer the order handlers need.
type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

type CreateOrderInput struct {
	Items       []models.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	UserEmail   string             `json:"userEmail"`
	Status      models.OrderStatus `json:"status"`
}

// POST /api/orders
//
// The line items and totalAmount are persisted exactly as sent; the total is
// not recomputed from the items.
func PlaceOrder(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order failed"})
			return
		}

		order := models.Order{
			Items:       input.Items,
			TotalAmount: input.TotalAmount,
			UserEmail:   input.UserEmail,
			Status:      input.Status,
		}

		saved, err := store.Create(c.Request.Context(), order)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order failed"})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// GET /api/orders/:email
func GetUserOrders(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.ListByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders
func GetAllOrders(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
