package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeID renames the store's internal identifier field to a
// public id string on a record crossing the response boundary. Records
// without an internal identifier (ephemeral seeds) pass through with
// whatever id they already carry.
func NormalizeID(doc bson.M) bson.M {
	if doc == nil {
		return doc
	}
	raw, ok := doc["_id"]
	if !ok {
		return doc
	}
	delete(doc, "_id")

	switch id := raw.(type) {
	case primitive.ObjectID:
		doc["id"] = id.Hex()
	case string:
		doc["id"] = id
	default:
		doc["id"] = fmt.Sprintf("%v", id)
	}
	return doc
}

// NormalizeDocuments applies NormalizeID to every record in a listing
func NormalizeDocuments(docs []bson.M) []bson.M {
	for i := range docs {
		docs[i] = NormalizeID(docs[i])
	}
	return docs
}
