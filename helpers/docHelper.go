package helpers

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDocument prepares a stored document for a JSON response: the
// internal _id becomes a string id and every timestamp is UTC RFC 3339.
func SerializeDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == "_id" {
			out["id"] = idString(v)
			continue
		}
		out[k] = serializeValue(v)
	}
	return out
}

func SerializeDocuments(docs []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, SerializeDocument(doc))
	}
	return out
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}

func serializeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.DateTime:
		return FormatTime(val.Time())
	case time.Time:
		return FormatTime(val)
	case primitive.ObjectID:
		return val.Hex()
	case primitive.M:
		nested := make(map[string]interface{}, len(val))
		for k, inner := range val {
			nested[k] = serializeValue(inner)
		}
		return nested
	case primitive.D:
		nested := make(map[string]interface{}, len(val))
		for _, e := range val {
			nested[e.Key] = serializeValue(e.Value)
		}
		return nested
	case primitive.A:
		list := make([]interface{}, 0, len(val))
		for _, inner := range val {
			list = append(list, serializeValue(inner))
		}
		return list
	default:
		return v
	}
}
