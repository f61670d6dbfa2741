package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the typed view of a Produits document. Documents are open-ended:
// ad-hoc fields added through the generic update path (promotions, details,
// renamed fields) land in Extra so they survive a decode/encode round trip.
type Product struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string                 `bson:"nom" json:"nom"`
	Price        float64                `bson:"prix" json:"prix"`
	Stock        int                    `bson:"stock" json:"stock"`
	Category     string                 `bson:"categorie" json:"categorie"`
	Tags         []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	LastModified *time.Time             `bson:"derniere_modification,omitempty" json:"derniere_modification,omitempty"`
	Extra        map[string]interface{} `bson:",inline" json:"-"`
}
