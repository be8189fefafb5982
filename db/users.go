package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuvojit07/LuminaMarket/models"
)

type UserRepo struct {
	col *mongo.Collection
}

// Get looks a user up by uid. A missing user is not an error: it returns
// (nil, nil) so the caller can respond with a JSON null.
func (r *UserRepo) Get(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Sync upserts the user keyed by uid in a single atomic write: the provided
// fields are set, lastLogin is restamped, and the uid (plus the role default)
// is written only when the record is first created. Concurrent syncs for the
// same uid therefore resolve to last-write-wins with no lost update.
func (r *UserRepo) Sync(ctx context.Context, uid string, fields map[string]interface{}) (models.User, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"uid": uid}, syncUpdate(fields, time.Now()), opts).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// syncUpdate builds the upsert document. The role default goes through
// $setOnInsert unless the caller set a role explicitly; MongoDB rejects the
// same path in both $set and $setOnInsert.
func syncUpdate(fields map[string]interface{}, now time.Time) bson.M {
	set := bson.M{"lastLogin": now}
	for k, v := range fields {
		set[k] = v
	}

	onInsert := bson.M{}
	if _, ok := set["role"]; !ok {
		onInsert["role"] = models.RoleUser
	}

	update := bson.M{"$set": set}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}
	return update
}
