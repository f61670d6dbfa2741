package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of a product at order time: name, unit price and
// quantity are copied, not referenced, so later price changes never affect
// an embedded order.
type OrderItem struct {
	Name     string  `bson:"nom" json:"nom"`
	Price    float64 `bson:"prix" json:"prix"`
	Quantity int     `bson:"quantite" json:"quantite"`
}

// EmbeddedOrder stores its line items inline plus a cached total. The total
// must always equal the sum of prix*quantite over Items; every mutation
// adjusts it in the same update.
type EmbeddedOrder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientName string             `bson:"client_nom" json:"client_nom"`
	OrderedAt  time.Time          `bson:"date_commande" json:"date_commande"`
	Status     string             `bson:"statut" json:"statut"`
	Items      []OrderItem        `bson:"produits" json:"produits"`
	Total      float64            `bson:"total" json:"total"`
}

// ProductRef links an order line to a product by id; price is resolved at
// read time against the current Produits documents.
type ProductRef struct {
	ProductID primitive.ObjectID `bson:"produit_id" json:"produit_id"`
	Quantity  int                `bson:"quantite" json:"quantite"`
}

// LinkedOrder stores references only, no snapshot and no cached total.
type LinkedOrder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientID  primitive.ObjectID `bson:"client_id" json:"client_id"`
	OrderedAt time.Time          `bson:"date_commande" json:"date_commande"`
	Status    string             `bson:"statut" json:"statut"`
	Items     []ProductRef       `bson:"produits" json:"produits"`
}

// DefaultOrderStatus is applied when a create request carries no statut.
const DefaultOrderStatus = "En cours"
