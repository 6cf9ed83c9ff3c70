package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is a document in the items collection. Every item has exactly one
// owner and ownership never transfers.
type Item struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	Name        string             `json:"name"        bson:"name"`
	Description string             `json:"description" bson:"description"`
	Quantity    int                `json:"quantity"    bson:"quantity"`
	Price       float64            `json:"price"       bson:"price"`
	UserID      primitive.ObjectID `json:"user_id"     bson:"userId"`
}
