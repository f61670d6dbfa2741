package handlers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serializeValue converts BSON-specific values into JSON-safe equivalents:
// ObjectIDs become hex strings, dates become RFC 3339 strings, and composite
// values are walked recursively.
func serializeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case bson.M:
		return serializeDoc(v)
	case map[string]interface{}:
		return serializeDoc(v)
	case bson.D:
		doc := bson.M{}
		for _, elem := range v {
			doc[elem.Key] = serializeValue(elem.Value)
		}
		return doc
	case bson.A:
		out := make([]interface{}, 0, len(v))
		for _, elem := range v {
			out = append(out, serializeValue(elem))
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, elem := range v {
			out = append(out, serializeValue(elem))
		}
		return out
	case []bson.M:
		out := make([]interface{}, 0, len(v))
		for _, elem := range v {
			out = append(out, serializeDoc(elem))
		}
		return out
	default:
		return value
	}
}

func serializeDoc(doc map[string]interface{}) bson.M {
	out := bson.M{}
	for key, value := range doc {
		out[key] = serializeValue(value)
	}
	return out
}

func serializeDocs(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, serializeDoc(doc))
	}
	return out
}
