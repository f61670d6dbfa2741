package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetClients lists all clients. Clients are read-only on this API; they are
// referenced by linked orders.
func GetClients(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := db.Collection("Clients").Find(ctx, bson.M{})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		defer cursor.Close(ctx)

		var clients []bson.M
		if err := cursor.All(ctx, &clients); err != nil {
			respondStoreError(c, err)
			return
		}

		respondOK(c, serializeDocs(clients))
	}
}
