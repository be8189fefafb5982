package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuvojit07/LuminaMarket/models"
)

type OrderRepo struct {
	col *mongo.Collection
}

// Create persists the order in one insert. Line items and totalAmount are
// stored exactly as given; only status and the timestamps are filled in.
func (r *OrderRepo) Create(ctx context.Context, order models.Order) (models.Order, error) {
	order = prepareOrder(order, time.Now())

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}

// ListByEmail returns the orders placed under the given email, newest first.
func (r *OrderRepo) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.list(ctx, bson.M{"userEmail": email})
}

// ListAll returns every order, newest first.
func (r *OrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *OrderRepo) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// prepareOrder stamps the system-managed fields on a new order.
func prepareOrder(order models.Order, now time.Time) models.Order {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	return order
}
