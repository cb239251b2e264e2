package services

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/utils"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var subscriptionCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	subscriptionCollection = database.GetCollection(database.DBName, "subscriptions")
	if subscriptionCollection == nil {
		log.Fatal("Failed to get the subscriptions collection")
	}
}

func CreateSubscription(sub *models.Subscription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	sub.ID = primitive.NewObjectID()
	sub.IsActive = true
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.LessonIDs == nil {
		sub.LessonIDs = []primitive.ObjectID{}
	}

	_, err := subscriptionCollection.InsertOne(ctx, sub)
	return err
}

func GetAllSubscriptions() ([]models.Subscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := subscriptionCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Subscription{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func UpdateSubscription(id string, fields bson.M) (*models.Subscription, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := utils.SetFields(fields)
	set["updatedAt"] = time.Now()

	var updated models.Subscription
	err = subscriptionCollection.FindOneAndUpdate(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteSubscription(id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := subscriptionCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
