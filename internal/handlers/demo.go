package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type demoRequest struct {
	Operator string                 `json:"operator"`
	Params   map[string]interface{} `json:"params"`
}

/* =========================
   PARAM BAG
========================= */

func paramValue(params map[string]interface{}, key string, fallback interface{}) interface{} {
	if v, ok := params[key]; ok {
		return v
	}
	return fallback
}

func paramString(params map[string]interface{}, key, fallback string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func paramInt(params map[string]interface{}, key string, fallback int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

/* =========================
   OPERATOR CONSTRUCTION
========================= */

// buildDemoQuery constructs the filter for a query-operator demonstration.
// The supported set is closed; an unrecognized operator returns ok=false.
// Each operator carries defaults so the endpoint works with an empty bag.
func buildDemoQuery(operator string, params map[string]interface{}) (bson.M, bool) {
	query := bson.M{}

	switch operator {
	case "$gt":
		field := paramString(params, "field", "prix")
		query[field] = bson.M{"$gt": paramValue(params, "value", 50)}
	case "$gte":
		field := paramString(params, "field", "stock")
		query[field] = bson.M{"$gte": paramValue(params, "value", 50)}
	case "$or":
		query["$or"] = paramValue(params, "conditions", []interface{}{
			bson.M{"categorie": "Chaussures"},
			bson.M{"prix": bson.M{"$lt": 30}},
		})
	case "$in":
		field := paramString(params, "field", "categorie")
		query[field] = bson.M{"$in": paramValue(params, "values", []interface{}{"Vêtements", "Accessoires"})}
	case "$exists":
		field := paramString(params, "field", "tags")
		query[field] = bson.M{"$exists": paramValue(params, "exists", true)}
	case "$regex":
		field := paramString(params, "field", "nom")
		query[field] = bson.M{
			"$regex":   paramString(params, "pattern", "^[SC]"),
			"$options": paramString(params, "options", "i"),
		}
	case "$where":
		query["$where"] = paramString(params, "expression", "this.prix * this.stock > 1000")
	default:
		return nil, false
	}

	return query, true
}

// buildDemoUpdate constructs a single update-operator group. Defaults mirror
// the query side: tags for the array operators, prix for $set.
func buildDemoUpdate(operator string, params map[string]interface{}) (bson.M, bool) {
	update := bson.M{}

	switch operator {
	case "$set":
		field := paramString(params, "field", "prix")
		update["$set"] = bson.M{field: paramValue(params, "value", 100)}
	case "$unset":
		field := paramString(params, "field", "details")
		update["$unset"] = bson.M{field: ""}
	case "$rename":
		field := paramString(params, "field", "oldName")
		update["$rename"] = bson.M{field: paramString(params, "newName", "newName")}
	case "$currentDate":
		field := paramString(params, "field", "lastModified")
		update["$currentDate"] = bson.M{field: bson.M{"$type": paramString(params, "type", "date")}}
	case "$push":
		field := paramString(params, "field", "tags")
		update["$push"] = bson.M{field: paramValue(params, "value", "nouveau")}
	case "$addToSet":
		field := paramString(params, "field", "tags")
		update["$addToSet"] = bson.M{field: paramValue(params, "value", "unique")}
	case "$pop":
		field := paramString(params, "field", "tags")
		update["$pop"] = bson.M{field: paramInt(params, "value", 1)}
	case "$pull":
		field := paramString(params, "field", "tags")
		update["$pull"] = bson.M{field: paramValue(params, "value", "outdated")}
	default:
		return nil, false
	}

	return update, true
}

/* =========================
   DISPATCHER
========================= */

// DemoOperators executes one named operator against the Produits collection.
// Query operators run a filtered read with an optional projection. Update
// operators deliberately apply to every document — unlike the regular update
// endpoints, which always target one document by id — so the effect is
// visible across the whole listing.
func DemoOperators(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req demoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Params == nil {
			req.Params = map[string]interface{}{}
		}

		if query, ok := buildDemoQuery(req.Operator, req.Params); ok {
			runDemoQuery(c, db, req.Operator, req.Params, query)
			return
		}

		if update, ok := buildDemoUpdate(req.Operator, req.Params); ok {
			runDemoUpdate(c, db, req.Operator, update)
			return
		}

		respondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown operator: %s", req.Operator))
	}
}

func runDemoQuery(c *gin.Context, db *mongo.Database, operator string, params map[string]interface{}, query bson.M) {
	ctx, cancel := requestContext(c)
	defer cancel()

	opts := options.Find()
	if projection, ok := params["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}

	cursor, err := db.Collection("Produits").Find(ctx, query, opts)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"operator": operator,
		"query":    serializeDoc(query),
		"count":    len(results),
		"data":     serializeDocs(results),
	})
}

func runDemoUpdate(c *gin.Context, db *mongo.Database, operator string, update bson.M) {
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := db.Collection("Produits").UpdateMany(ctx, bson.M{}, update)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	cursor, err := db.Collection("Produits").Find(ctx, bson.M{})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"operator":       operator,
		"query":          serializeDoc(update),
		"count":          len(results),
		"modified_count": res.ModifiedCount,
		"data":           serializeDocs(results),
	})
}
