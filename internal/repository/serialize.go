package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize prepares a stored document for a client response: the
// storage-native "_id" key is removed and re-added under "id" with its value
// rendered as a plain string. All other fields pass through unchanged.
func Serialize(doc bson.M) map[string]any {
	if doc == nil {
		return nil
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}

	if raw, ok := doc["_id"]; ok {
		if oid, isOID := raw.(primitive.ObjectID); isOID {
			out["id"] = oid.Hex()
		} else {
			out["id"] = fmt.Sprint(raw)
		}
	}

	return out
}
