package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"boutique/internal/models"
)

type createProductRequest struct {
	Name     string   `json:"nom" binding:"required"`
	Price    *float64 `json:"prix" binding:"required"`
	Stock    *int     `json:"stock" binding:"required"`
	Category string   `json:"categorie" binding:"required"`
	Tags     []string `json:"tags"`
}

/* =======================
   LIST
======================= */

// GetProducts lists Produits with the composable filters of the query
// string. The total is counted on the filter before pagination so the
// response reflects the full matching set.
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := productListQueryFromContext(c)
		filter := buildProductFilter(q)
		skip, limit, limitSet := buildProductPagination(q)

		ctx, cancel := requestContext(c)
		defer cancel()

		total, err := db.Collection("Produits").CountDocuments(ctx, filter)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		opts := options.Find().SetSort(buildProductSort(q.Sort))
		if skip > 0 {
			opts.SetSkip(skip)
		}
		if limitSet {
			opts.SetLimit(limit)
		}

		cursor, err := db.Collection("Produits").Find(ctx, filter, opts)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		defer cursor.Close(ctx)

		var products []bson.M
		if err := cursor.All(ctx, &products); err != nil {
			respondStoreError(c, err)
			return
		}

		var limitValue interface{}
		if limitSet {
			limitValue = limit
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    serializeDocs(products),
			"total":   total,
			"skip":    skip,
			"limit":   limitValue,
		})
	}
}

/* =======================
   GET ONE
======================= */

func GetProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid product ID")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var product bson.M
		err := db.Collection("Produits").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			respondStoreError(c, err)
			return
		}

		respondOK(c, serializeDoc(product))
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, bindingErrorMessage(err))
			return
		}

		if *req.Price < 0 {
			respondError(c, http.StatusBadRequest, "prix must be zero or greater")
			return
		}
		if *req.Stock < 0 {
			respondError(c, http.StatusBadRequest, "stock must be zero or greater")
			return
		}

		product := models.Product{
			Name:     req.Name,
			Price:    *req.Price,
			Stock:    *req.Stock,
			Category: req.Category,
			Tags:     req.Tags,
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("Produits").InsertOne(ctx, product)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		product.ID = res.InsertedID.(primitive.ObjectID)

		respondCreated(c, product, "Product created successfully")
	}
}

/* =======================
   UPDATE
======================= */

// UpdateProduct applies a composite update built by buildUpdateSpec to one
// product. The id must be well formed (400) and resolve to an existing
// document (404) before any write is attempted. An update that changes
// nothing is a success with a "No changes made" status.
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid product ID")
		if !ok {
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		err := db.Collection("Produits").FindOne(ctx, bson.M{"_id": id}).Err()
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			respondStoreError(c, err)
			return
		}

		update := buildUpdateSpec(body)

		res, err := db.Collection("Produits").UpdateOne(ctx, bson.M{"_id": id}, update)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		if res.ModifiedCount == 0 {
			respondMessage(c, "No changes made")
			return
		}

		var updated bson.M
		if err := db.Collection("Produits").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOKWithMessage(c, serializeDoc(updated), "Product updated successfully")
	}
}

/* =======================
   DELETE
======================= */

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid product ID")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := db.Collection("Produits").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if res.DeletedCount == 0 {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}

		respondMessage(c, "Product deleted successfully")
	}
}
