package handlers

import (
	"testing"

	"boutique/internal/models"
)

func TestOrderTotalSumsItemAmounts(t *testing.T) {
	items := []models.OrderItem{
		{Name: "T-Shirt Blanc", Price: 19.99, Quantity: 2},
		{Name: "Jean Slim", Price: 49.99, Quantity: 1},
	}

	if got := orderTotal(items); got != 19.99*2+49.99 {
		t.Fatalf("expected total %v, got %v", 19.99*2+49.99, got)
	}
}

func TestOrderTotalTracksAddAndRemove(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Chemise Bleue", Price: 39.99, Quantity: 1},
		{Name: "Ceinture Cuir", Price: 34.99, Quantity: 2},
	}
	before := orderTotal(items)

	added := models.OrderItem{Name: "Bottes Hiver", Price: 119.99, Quantity: 1}
	items = append(items, added)
	if got := orderTotal(items); got != before+itemAmount(added) {
		t.Fatalf("adding an item must raise the total by exactly its amount, got %v", got)
	}

	removed := items[0]
	items = items[1:]
	if got := orderTotal(items); got != before+itemAmount(added)-itemAmount(removed) {
		t.Fatalf("removing an item must lower the total by exactly its amount, got %v", got)
	}
}

func TestFindOrderItemReturnsFirstMatch(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Sandales Plage", Price: 29.99, Quantity: 1},
		{Name: "Sandales Plage", Price: 24.99, Quantity: 3},
	}

	item := findOrderItem(items, "Sandales Plage")
	if item == nil || item.Price != 29.99 {
		t.Fatalf("expected first matching item, got %+v", item)
	}

	if findOrderItem(items, "Montre Classique") != nil {
		t.Fatal("expected nil for an absent item")
	}
}

func TestEmbeddedItemFromRequestDefaultsQuantityToOne(t *testing.T) {
	price := 12.5
	item := embeddedItemFromRequest(embeddedItemRequest{Name: "Casquette", Price: &price})
	if item.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", item.Quantity)
	}

	quantity := 4
	item = embeddedItemFromRequest(embeddedItemRequest{Name: "Casquette", Price: &price, Quantity: &quantity})
	if item.Quantity != 4 {
		t.Fatalf("expected explicit quantity kept, got %d", item.Quantity)
	}
}
