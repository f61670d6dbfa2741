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

type linkedItemRequest struct {
	ProductID string `json:"produit_id" binding:"required"`
	Quantity  *int   `json:"quantite"`
}

type createLinkedOrderRequest struct {
	ClientID string              `json:"client_id" binding:"required"`
	Items    []linkedItemRequest `json:"produits" binding:"required"`
	Status   string              `json:"statut"`
}

// linkedOrderLookups joins every order's product references against Produits
// and its client reference against Clients in one batched aggregation, so a
// full listing costs one pipeline instead of a query per order.
func linkedOrderLookups() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "Produits",
			"localField":   "produits.produit_id",
			"foreignField": "_id",
			"as":           "produits_details",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "Clients",
			"localField":   "client_id",
			"foreignField": "_id",
			"as":           "client_details",
		}}},
	}
}

func linkedItemFromRequest(req linkedItemRequest) (models.ProductRef, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return models.ProductRef{}, err
	}
	ref := models.ProductRef{ProductID: productID, Quantity: 1}
	if req.Quantity != nil {
		ref.Quantity = *req.Quantity
	}
	return ref, nil
}

/* =========================
   CRUD
========================= */

// GetLinkedOrders returns all linked orders with product and client
// references resolved at read time against the current documents.
func GetLinkedOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		pipeline := mongo.Pipeline(linkedOrderLookups())

		cursor, err := db.Collection("CommandesLinking").Aggregate(ctx, pipeline)
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

func GetLinkedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.M{"_id": id}}}}
		pipeline = append(pipeline, linkedOrderLookups()...)

		cursor, err := db.Collection("CommandesLinking").Aggregate(ctx, pipeline)
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
		if len(orders) == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		respondOK(c, serializeDoc(orders[0]))
	}
}

// CreateLinkedOrder persists the reference pairs verbatim: no snapshot and
// no cached total, prices are resolved at read time.
func CreateLinkedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createLinkedOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "client_id and produits required")
			return
		}

		clientID, err := primitive.ObjectIDFromHex(req.ClientID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid client_id")
			return
		}

		items := make([]models.ProductRef, 0, len(req.Items))
		for _, itemReq := range req.Items {
			ref, err := linkedItemFromRequest(itemReq)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Invalid produit_id")
				return
			}
			items = append(items, ref)
		}

		status := req.Status
		if status == "" {
			status = models.DefaultOrderStatus
		}

		order := models.LinkedOrder{
			ClientID:  clientID,
			OrderedAt: time.Now(),
			Status:    status,
			Items:     items,
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesLinking").InsertOne(ctx, order)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		order.ID = res.InsertedID.(primitive.ObjectID)

		respondCreated(c, order, "Linked order created")
	}
}

func AddLinkedProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		var req linkedItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "produit_id required")
			return
		}

		ref, err := linkedItemFromRequest(req)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid produit_id")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesLinking").UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$push": bson.M{"produits": ref}},
		)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		var updated bson.M
		if err := db.Collection("CommandesLinking").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Product added to linked order")
	}
}

func RemoveLinkedProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesLinking").UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$pull": bson.M{"produits": bson.M{"produit_id": productID}}},
		)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		var updated bson.M
		if err := db.Collection("CommandesLinking").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Product removed from linked order")
	}
}

func UpdateLinkedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		var req struct {
			Status *string `json:"statut"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Status == nil {
			respondError(c, http.StatusBadRequest, "No fields to update")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesLinking").UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"statut": *req.Status}},
		)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		var updated bson.M
		if err := db.Collection("CommandesLinking").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Linked order updated")
	}
}

func DeleteLinkedOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid order ID")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("CommandesLinking").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.DeletedCount == 0 {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}

		respondMessage(c, "Linked order deleted")
	}
}
