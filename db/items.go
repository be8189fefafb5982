package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuvojit07/LuminaMarket/models"
)

type ItemRepo struct {
	col *mongo.Collection
}

// List returns every item, newest first by insertion order.
func (r *ItemRepo) List(ctx context.Context) ([]models.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts the item and returns it with the generated id.
func (r *ItemRepo) Create(ctx context.Context, item models.Item) (models.Item, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return models.Item{}, err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}
