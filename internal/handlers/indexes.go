package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type createIndexRequest struct {
	Field string `json:"field"`
}

// GetIndexes lists the indexes of the Produits collection as
// {name, key, unique} descriptors.
func GetIndexes(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := db.Collection("Produits").Indexes().List(ctx)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		defer cursor.Close(ctx)

		var raw []bson.M
		if err := cursor.All(ctx, &raw); err != nil {
			respondStoreError(c, err)
			return
		}

		indexes := make([]gin.H, 0, len(raw))
		for _, index := range raw {
			unique := false
			if v, ok := index["unique"].(bool); ok {
				unique = v
			}
			indexes = append(indexes, gin.H{
				"name":   index["name"],
				"key":    serializeValue(index["key"]),
				"unique": unique,
			})
		}

		respondOK(c, indexes)
	}
}

// CreateIndex creates an ascending single-field index on Produits. Indexes
// are only ever created explicitly through this endpoint or the startup
// bootstrap, never implicitly.
func CreateIndex(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createIndexRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Field == "" {
			respondError(c, http.StatusBadRequest, "Field name required")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		model := mongo.IndexModel{Keys: bson.D{{Key: req.Field, Value: 1}}}
		name, err := db.Collection("Produits").Indexes().CreateOne(ctx, model)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		respondMessage(c, fmt.Sprintf("Index created: %s", name))
	}
}
