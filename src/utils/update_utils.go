package utils

import "go.mongodb.org/mongo-driver/bson"

// SetFields builds the $set map for a partial update from client-supplied
// fields, dropping identifier keys the client may echo back. Callers must
// treat an empty result as a no-op read: Mongo rejects an empty $set.
func SetFields(fields map[string]interface{}) bson.M {
	set := bson.M{}
	for key, value := range fields {
		if key == "id" || key == "_id" {
			continue
		}
		set[key] = value
	}
	return set
}
