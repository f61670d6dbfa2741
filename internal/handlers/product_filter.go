package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// productListQuery carries the raw filter/sort/pagination parameters of the
// product list endpoint.
type productListQuery struct {
	Category string
	MinPrice string
	MaxPrice string
	MinStock string
	Search   string
	HasField string
	Sort     string
	Limit    string
	Skip     string
}

func productListQueryFromContext(c *gin.Context) productListQuery {
	return productListQuery{
		Category: c.Query("category"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		MinStock: c.Query("min_stock"),
		Search:   c.Query("search"),
		HasField: c.Query("has_field"),
		Sort:     c.Query("sort"),
		Limit:    c.Query("limit"),
		Skip:     c.Query("skip"),
	}
}

// buildProductFilter translates list parameters into a Produits filter.
// Conditions compose by AND. Malformed numeric parameters are dropped as if
// absent; the list endpoint is deliberately lenient.
func buildProductFilter(q productListQuery) bson.M {
	filter := bson.M{}

	if q.Category != "" {
		categories := strings.Split(q.Category, ",")
		if len(categories) > 1 {
			filter["categorie"] = bson.M{"$in": categories}
		} else {
			filter["categorie"] = q.Category
		}
	}

	price := bson.M{}
	if v, err := strconv.ParseFloat(q.MinPrice, 64); q.MinPrice != "" && err == nil {
		price["$gte"] = v
	}
	if v, err := strconv.ParseFloat(q.MaxPrice, 64); q.MaxPrice != "" && err == nil {
		price["$lte"] = v
	}
	if len(price) > 0 {
		filter["prix"] = price
	}

	// Strict greater-than: min_stock=50 excludes stock 50, unlike the
	// inclusive price bounds.
	if v, err := strconv.Atoi(q.MinStock); q.MinStock != "" && err == nil {
		filter["stock"] = bson.M{"$gt": v}
	}

	if q.Search != "" {
		filter["nom"] = bson.M{"$regex": q.Search, "$options": "i"}
	}

	if q.HasField != "" {
		filter[q.HasField] = bson.M{"$exists": true}
	}

	return filter
}

// buildProductSort parses the sort parameter: a leading minus requests
// descending order, and the default is ascending by nom.
func buildProductSort(sort string) bson.D {
	field := sort
	order := 1
	if field == "" {
		field = "nom"
	}
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

// buildProductPagination parses skip and limit. Skip defaults to 0 and an
// unset (or malformed) limit means unbounded, reported as limitSet=false.
func buildProductPagination(q productListQuery) (skip int64, limit int64, limitSet bool) {
	if v, err := strconv.ParseInt(q.Skip, 10, 64); q.Skip != "" && err == nil && v > 0 {
		skip = v
	}
	if v, err := strconv.ParseInt(q.Limit, 10, 64); q.Limit != "" && err == nil && v > 0 {
		limit = v
		limitSet = true
	}
	return skip, limit, limitSet
}
