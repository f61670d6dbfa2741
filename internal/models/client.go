package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Client is read-only on the API surface; linked orders reference it by id.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Surname   string             `bson:"nom" json:"nom"`
	FirstName string             `bson:"prenom" json:"prenom"`
	Email     string             `bson:"email" json:"email"`
	City      string             `bson:"ville" json:"ville"`
}
