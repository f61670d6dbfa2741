package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SalesByCategory expands each embedded order's line items into independent
// rows, joins each row back to Produits by nom to recover the category, and
// groups by category summing revenue and unit count.
func SalesByCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$unwind", Value: "$produits"}},
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         "Produits",
				"localField":   "produits.nom",
				"foreignField": "nom",
				"as":           "details_produit",
			}}},
			bson.D{{Key: "$unwind", Value: "$details_produit"}},
			bson.D{{Key: "$group", Value: bson.M{
				"_id":             "$details_produit.categorie",
				"total_ventes":    bson.M{"$sum": bson.M{"$multiply": bson.A{"$produits.prix", "$produits.quantite"}}},
				"nombre_articles": bson.M{"$sum": "$produits.quantite"},
			}}},
		}

		results, ok := runAggregation(c, db, "CommandesEmbedding", pipeline)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"embedded_orders": serializeDocs(results),
			},
		})
	}
}

// StockByCategory groups Produits by category with document count, total
// stock, inventory value (prix*stock) and average price, sorted by inventory
// value descending.
func StockByCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$group", Value: bson.M{
				"_id":             "$categorie",
				"nombre_produits": bson.M{"$sum": 1},
				"stock_total":     bson.M{"$sum": "$stock"},
				"valeur_stock":    bson.M{"$sum": bson.M{"$multiply": bson.A{"$prix", "$stock"}}},
				"prix_moyen":      bson.M{"$avg": "$prix"},
			}}},
			bson.D{{Key: "$sort", Value: bson.M{"valeur_stock": -1}}},
		}

		results, ok := runAggregation(c, db, "Produits", pipeline)
		if !ok {
			return
		}

		respondOK(c, serializeDocs(results))
	}
}

// TopProducts ranks products by quantity sold across all embedded orders,
// truncated to the top 10.
func TopProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$unwind", Value: "$produits"}},
			bson.D{{Key: "$group", Value: bson.M{
				"_id":             "$produits.nom",
				"quantite_vendue": bson.M{"$sum": "$produits.quantite"},
				"revenue":         bson.M{"$sum": bson.M{"$multiply": bson.A{"$produits.prix", "$produits.quantite"}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.M{"quantite_vendue": -1}}},
			bson.D{{Key: "$limit", Value: 10}},
		}

		results, ok := runAggregation(c, db, "CommandesEmbedding", pipeline)
		if !ok {
			return
		}

		respondOK(c, serializeDocs(results))
	}
}

func runAggregation(c *gin.Context, db *mongo.Database, collection string, pipeline mongo.Pipeline) ([]bson.M, bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cursor, err := db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		respondStoreError(c, err)
		return nil, false
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		respondStoreError(c, err)
		return nil, false
	}
	return results, true
}
