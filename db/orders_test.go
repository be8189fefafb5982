package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shuvojit07/LuminaMarket/models"
)

func TestPrepareOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("DefaultsStatusAndTimestamps", func(t *testing.T) {
		order := prepareOrder(models.Order{
			Items:       []models.OrderItem{{ItemID: "i1", Name: "Mug", Price: 9.99, Quantity: 2}},
			TotalAmount: 19.98,
			UserEmail:   "a@b.com",
		}, now)

		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, now, order.CreatedAt)
		assert.Equal(t, now, order.UpdatedAt)
	})

	t.Run("KeepsProvidedStatus", func(t *testing.T) {
		order := prepareOrder(models.Order{Status: models.OrderStatusPaid}, now)

		assert.Equal(t, models.OrderStatusPaid, order.Status)
	})

	t.Run("LineItemsUntouched", func(t *testing.T) {
		items := []models.OrderItem{
			{ItemID: "i1", Name: "Mug", Price: 9.99, Quantity: 2, Image: "mug.png"},
			{ItemID: "i2", Name: "Lamp", Price: 25, Quantity: 1},
		}
		order := prepareOrder(models.Order{Items: items, TotalAmount: 1.00}, now)

		assert.Equal(t, items, order.Items)
		assert.Equal(t, 1.00, order.TotalAmount)
	})
}
