package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type addTagRequest struct {
	Tag    string `json:"tag"`
	Unique *bool  `json:"unique"`
}

type removeTagRequest struct {
	Tag string `json:"tag"`
}

type popTagRequest struct {
	Position string `json:"position"`
}

// AddProductTag appends a tag to a product's tags array. With unique=true
// (the default) the tag is added with set semantics and never duplicated;
// unique=false appends unconditionally.
func AddProductTag(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid product ID")
		if !ok {
			return
		}

		var req addTagRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Tag == "" {
			respondError(c, http.StatusBadRequest, "Tag is required")
			return
		}

		operator := "$addToSet"
		if req.Unique != nil && !*req.Unique {
			operator = "$push"
		}

		updated, ok := applyTagUpdate(c, db, id, bson.M{operator: bson.M{"tags": req.Tag}})
		if !ok {
			return
		}
		respondOKWithMessage(c, updated, fmt.Sprintf("Tag added using %s", operator))
	}
}

// RemoveProductTag removes every occurrence of the given tag value.
func RemoveProductTag(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid product ID")
		if !ok {
			return
		}

		var req removeTagRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Tag == "" {
			respondError(c, http.StatusBadRequest, "Tag is required")
			return
		}

		updated, ok := applyTagUpdate(c, db, id, bson.M{"$pull": bson.M{"tags": req.Tag}})
		if !ok {
			return
		}
		respondOKWithMessage(c, updated, "Tag removed using $pull")
	}
}

// PopProductTag removes the first or last tag, selected by position
// ("first" maps to -1, anything else to +1, Mongo's $pop convention).
func PopProductTag(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "Invalid product ID")
		if !ok {
			return
		}

		var req popTagRequest
		_ = c.ShouldBindJSON(&req)

		position := req.Position
		if position == "" {
			position = "last"
		}
		pop := 1
		if position == "first" {
			pop = -1
		}

		updated, ok := applyTagUpdate(c, db, id, bson.M{"$pop": bson.M{"tags": pop}})
		if !ok {
			return
		}
		respondOKWithMessage(c, updated, fmt.Sprintf("Removed %s tag using $pop", position))
	}
}

func applyTagUpdate(c *gin.Context, db *mongo.Database, id primitive.ObjectID, update bson.M) (bson.M, bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := db.Collection("Produits").UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		respondStoreError(c, err)
		return nil, false
	}
	if res.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Product not found")
		return nil, false
	}

	var updated bson.M
	if err := db.Collection("Produits").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		respondStoreError(c, err)
		return nil, false
	}
	return serializeDoc(updated), true
}
