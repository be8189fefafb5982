package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSyncUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("MergesFieldsAndStampsLastLogin", func(t *testing.T) {
		update := syncUpdate(map[string]interface{}{
			"email":       "a@b.com",
			"displayName": "Ada",
		}, now)

		set := update["$set"].(bson.M)
		assert.Equal(t, "a@b.com", set["email"])
		assert.Equal(t, "Ada", set["displayName"])
		assert.Equal(t, now, set["lastLogin"])
	})

	t.Run("RoleDefaultOnlyOnInsert", func(t *testing.T) {
		update := syncUpdate(map[string]interface{}{"email": "a@b.com"}, now)

		onInsert := update["$setOnInsert"].(bson.M)
		assert.Equal(t, "user", onInsert["role"])

		set := update["$set"].(bson.M)
		_, hasRole := set["role"]
		assert.False(t, hasRole)
	})

	t.Run("ExplicitRoleSkipsInsertDefault", func(t *testing.T) {
		// The same path in $set and $setOnInsert is a write conflict, so an
		// explicit role must drop the $setOnInsert default entirely.
		update := syncUpdate(map[string]interface{}{"role": "admin"}, now)

		set := update["$set"].(bson.M)
		assert.Equal(t, "admin", set["role"])

		_, hasOnInsert := update["$setOnInsert"]
		assert.False(t, hasOnInsert)
	})

	t.Run("EmptyFieldsStillRestampsLastLogin", func(t *testing.T) {
		update := syncUpdate(map[string]interface{}{}, now)

		set := update["$set"].(bson.M)
		assert.Len(t, set, 1)
		assert.Equal(t, now, set["lastLogin"])
	})
}
