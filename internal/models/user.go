package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document in the users collection.
//
// Password is stored and compared in plaintext. This is a documented
// weakness of the system; changing it would change observable login
// behavior, so it stays.
type User struct {
	ID       primitive.ObjectID `json:"id"       bson:"_id,omitempty"`
	Email    string             `json:"email"    bson:"email"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"password" bson:"password"`
}
