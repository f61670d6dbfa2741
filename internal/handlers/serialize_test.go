package handlers

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeDocConvertsObjectIDs(t *testing.T) {
	id := primitive.NewObjectID()
	doc := serializeDoc(bson.M{"_id": id, "nom": "Jean Slim"})

	if doc["_id"] != id.Hex() {
		t.Fatalf("expected hex id %s, got %v", id.Hex(), doc["_id"])
	}
	if doc["nom"] != "Jean Slim" {
		t.Fatalf("expected plain values untouched, got %v", doc["nom"])
	}
}

func TestSerializeDocConvertsDates(t *testing.T) {
	moment := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	doc := serializeDoc(bson.M{
		"date_commande": primitive.NewDateTimeFromTime(moment),
	})

	if doc["date_commande"] != "2024-03-01T12:30:00Z" {
		t.Fatalf("expected RFC 3339 date, got %v", doc["date_commande"])
	}
}

func TestSerializeDocWalksNestedStructures(t *testing.T) {
	id := primitive.NewObjectID()
	doc := serializeDoc(bson.M{
		"produits": bson.A{
			bson.M{"produit_id": id, "quantite": 2},
		},
	})

	items, ok := doc["produits"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("expected serialized array, got %v", doc["produits"])
	}
	item := items[0].(bson.M)
	if item["produit_id"] != id.Hex() {
		t.Fatalf("expected nested id converted, got %v", item["produit_id"])
	}
}

func TestSerializeDocsPreservesOrderAndLength(t *testing.T) {
	docs := serializeDocs([]bson.M{
		{"nom": "a"},
		{"nom": "b"},
	})
	if len(docs) != 2 || docs[0]["nom"] != "a" || docs[1]["nom"] != "b" {
		t.Fatalf("unexpected serialization result: %v", docs)
	}
}
