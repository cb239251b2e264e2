package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// parseObjectID converts a path parameter into an ObjectID. Hex that does
// not parse is treated the same as an id that resolves to nothing.
func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

// findAfter asks FindOneAndUpdate for the post-update document.
func findAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
