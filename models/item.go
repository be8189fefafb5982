package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	// Defaults applied when a new item omits the field
	DefaultItemStock  = 0
	DefaultItemRating = 5
)

type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image"`
	Category    string             `bson:"category,omitempty" json:"category"`
	Stock       int                `bson:"stock" json:"stock"`
	Rating      float64            `bson:"rating" json:"rating"`
}
