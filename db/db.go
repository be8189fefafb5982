package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store bundles the per-collection repositories behind one MongoDB client.
// The client is safe for concurrent use, so a single Store is shared by all
// request handlers.
type Store struct {
	Items  *ItemRepo
	Users  *UserRepo
	Orders *OrderRepo
}

// Connect opens the MongoDB client and pings the server. A ping failure still
// returns a usable Store: the driver reconnects on its own, and until the
// server is reachable every operation fails individually instead of taking
// the process down.
func Connect(uri, name string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	database := client.Database(name)
	store := &Store{
		Items:  &ItemRepo{col: database.Collection("items")},
		Users:  &UserRepo{col: database.Collection("users")},
		Orders: &OrderRepo{col: database.Collection("orders")},
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return store, err
	}
	return store, nil
}
