package itemControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvojit07/LuminaMarket/models"
)

// ItemStore is the slice of the storage layer the item handlers need.
type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, item models.Item) (models.Item, error)
}

type CreateItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Stock       *int     `json:"stock"`
	Rating      *float64 `json:"rating"`
}

// GET /api/items
func GetItems(store ItemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/items
func CreateItem(store ItemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Item add failed"})
			return
		}

		item := models.Item{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			Image:       input.Image,
			Category:    input.Category,
			Stock:       models.DefaultItemStock,
			Rating:      models.DefaultItemRating,
		}
		if input.Stock != nil {
			item.Stock = *input.Stock
		}
		if input.Rating != nil {
			item.Rating = *input.Rating
		}

		saved, err := store.Create(c.Request.Context(), item)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Item add failed"})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}
