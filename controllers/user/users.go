package userControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvojit07/LuminaMarket/models"
)

// UserStore is the slice of the storage layer the user handlers need.
type UserStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
	Sync(ctx context.Context, uid string, fields map[string]interface{}) (models.User, error)
}

// SyncUserInput uses pointers so that only the fields present in the request
// body are written; omitted fields keep their stored values.
type SyncUserInput struct {
	UID         string  `json:"uid"`
	Email       *string `json:"email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
	Role        *string `json:"role"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// GET /api/users/:uid
func GetUser(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.Get(c.Request.Context(), c.Param("uid"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "User not found"})
			return
		}
		// A nil user serializes to null; an unknown uid is not an error.
		c.JSON(http.StatusOK, user)
	}
}

// POST /api/users/sync
func SyncUser(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SyncUserInput
		if err := c.ShouldBindJSON(&input); err != nil || input.UID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User sync failed"})
			return
		}

		fields := make(map[string]interface{})
		if input.Email != nil {
			fields["email"] = *input.Email
		}
		if input.DisplayName != nil {
			fields["displayName"] = *input.DisplayName
		}
		if input.PhotoURL != nil {
			fields["photoURL"] = *input.PhotoURL
		}
		if input.Role != nil {
			fields["role"] = *input.Role
		}
		if input.Phone != nil {
			fields["phone"] = *input.Phone
		}
		if input.Address != nil {
			fields["address"] = *input.Address
		}

		user, err := store.Sync(c.Request.Context(), input.UID, fields)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User sync failed"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
