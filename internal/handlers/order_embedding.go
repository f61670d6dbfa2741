package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"boutique/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type embeddedItemRequest struct {
	Name     string   `json:"nom"`
	Price    *float64 `json:"prix"`
	Quantity *int     `json:"quantite"`
}

type createEmbeddedOrderRequest struct {
	ClientName string                `json:"client_nom" binding:"required"`
	Items      []embeddedItemRequest `json:"produits" binding:"required"`
	Status     string                `json:"statut"`
}

type updateEmbeddedOrderRequest struct {
	Status     *string `json:"statut"`
	ClientName *string `json:"client_nom"`
}

/* =========================
   TOTAL ARITHMETIC
========================= */

func itemAmount(item models.OrderItem) float64 {
	return item.Price * float64(item.Quantity)
}

// orderTotal is the invariant every embedded-order mutation must restore:
// total == sum of prix*quantite over the current items.
func orderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += itemAmount(item)
	}
	return total
}

// findOrderItem returns the first item whose nom matches, or nil.
func findOrderItem(items []models.OrderItem, name string) *models.OrderItem {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}

func embeddedItemFromRequest(req embeddedItemRequest) models.OrderItem {
	item := models.OrderItem{Name: req.Name, Quantity: 1}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	return item
}

/* =========================
   CRUD
========================= */

func GetEmbeddedOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := db.Collection("CommandesEmbedding").Find(ctx, bson.M{})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		defer cursor.Close(ctx)

		var orders []bson.M
		if err := cursor.All(ctx, &orders); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOK(c, serializeDocs(orders))
	}
}

func GetEmbeddedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var order bson.M
		err := db.Collection("CommandesEmbedding").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			respondStoreError(c, err)
			return
		}

		respondOK(c, serializeDoc(order))
	}
}

// CreateEmbeddedOrder persists an order whose line items are immutable
// snapshots; the total is computed once from the items at insert time.
func CreateEmbeddedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEmbeddedOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "client_nom and produits required")
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			items = append(items, embeddedItemFromRequest(itemReq))
		}

		status := req.Status
		if status == "" {
			status = models.DefaultOrderStatus
		}

		order := models.EmbeddedOrder{
			ClientName: req.ClientName,
			OrderedAt:  time.Now(),
			Status:     status,
			Items:      items,
			Total:      orderTotal(items),
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesEmbedding").InsertOne(ctx, order)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		order.ID = res.InsertedID.(primitive.ObjectID)

		respondCreated(c, order, "Embedded order created")
	}
}

// AddOrderItem appends an item snapshot and increments the cached total in
// one composite update, so no observer ever sees the item without its total
// adjustment.
func AddOrderItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		var req embeddedItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price == nil {
			respondError(c, http.StatusBadRequest, "nom and prix required")
			return
		}
		item := embeddedItemFromRequest(req)

		ctx, cancel := requestContext(c)
		defer cancel()

		update := bson.M{
			"$push": bson.M{"produits": item},
			"$inc":  bson.M{"total": itemAmount(item)},
		}

		res, err := db.Collection("CommandesEmbedding").UpdateOne(ctx, bson.M{"_id": id}, update)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		var updated bson.M
		if err := db.Collection("CommandesEmbedding").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Product added to order")
	}
}

// RemoveOrderItem removes every item matching the given nom and decrements
// the total by the first match's amount, again as one composite update.
func RemoveOrderItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		var req struct {
			Name string `json:"nom"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			respondError(c, http.StatusBadRequest, "Product nom required")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var order models.EmbeddedOrder
		err := db.Collection("CommandesEmbedding").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			respondStoreError(c, err)
			return
		}

		item := findOrderItem(order.Items, req.Name)
		if item == nil {
			respondError(c, http.StatusNotFound, "Product not in order")
			return
		}

		update := bson.M{
			"$pull": bson.M{"produits": bson.M{"nom": req.Name}},
			"$inc":  bson.M{"total": -itemAmount(*item)},
		}

		if _, err := db.Collection("CommandesEmbedding").UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
			respondStoreError(c, err)
			return
		}

		var updated bson.M
		if err := db.Collection("CommandesEmbedding").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Product removed from order")
	}
}

// UpdateEmbeddedOrder sets statut and/or client_nom. The cached total is
// never touched here.
func UpdateEmbeddedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		var req updateEmbeddedOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		fields := bson.M{}
		if req.Status != nil {
			fields["statut"] = *req.Status
		}
		if req.ClientName != nil {
			fields["client_nom"] = *req.ClientName
		}
		if len(fields) == 0 {
			respondError(c, http.StatusBadRequest, "No fields to update")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesEmbedding").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		var updated bson.M
		if err := db.Collection("CommandesEmbedding").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Embedded order updated")
	}
}

func DeleteEmbeddedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesEmbedding").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.DeletedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		respondMessage(c, "Embedded order deleted")
	}
}
