package handlers

import "go.mongodb.org/mongo-driver/bson"

// updateOperators is the closed set of operator groups a product update body
// may carry explicitly.
var updateOperators = []string{
	"$set", "$unset", "$rename", "$currentDate",
	"$push", "$addToSet", "$pull", "$pop",
}

// buildUpdateSpec turns a request body into a composite update document.
// Explicit operator groups pass through unchanged. A body with no operator
// group at all is treated as a $set over all of its fields, minus any _id.
// Every update additionally stamps derniere_modification via $currentDate,
// merged with a caller-supplied $currentDate group rather than replacing it.
func buildUpdateSpec(body map[string]interface{}) bson.M {
	update := bson.M{}

	for _, op := range updateOperators {
		if group, ok := body[op]; ok {
			update[op] = group
		}
	}

	if len(update) == 0 {
		fields := bson.M{}
		for key, value := range body {
			if key == "_id" {
				continue
			}
			fields[key] = value
		}
		if len(fields) > 0 {
			update["$set"] = fields
		}
	}

	currentDate := bson.M{}
	switch group := update["$currentDate"].(type) {
	case bson.M:
		for key, value := range group {
			currentDate[key] = value
		}
	case map[string]interface{}:
		for key, value := range group {
			currentDate[key] = value
		}
	}
	currentDate["derniere_modification"] = true
	update["$currentDate"] = currentDate

	return update
}
