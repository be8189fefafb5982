package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleUser is the role stamped on users created through the sync endpoint.
const RoleUser = "user"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID         string             `bson:"uid" json:"uid"`
	Email       string             `bson:"email,omitempty" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL"`
	Role        string             `bson:"role" json:"role"`
	Phone       string             `bson:"phone,omitempty" json:"phone"`
	Address     string             `bson:"address,omitempty" json:"address"`
	LastLogin   time.Time          `bson:"lastLogin" json:"lastLogin"`
}
