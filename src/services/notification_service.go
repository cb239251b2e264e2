package services

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var notificationCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	notificationCollection = database.GetCollection(database.DBName, "studentNotifications")
	if notificationCollection == nil {
		log.Fatal("Failed to get the studentNotifications collection")
	}
}

func CreateNotification(n *models.StudentNotification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now()

	_, err := notificationCollection.InsertOne(ctx, n)
	return err
}

func GetNotificationsByStudent(studentID string) ([]models.StudentNotification, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := notificationCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []models.StudentNotification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flips the read flag and returns the updated entry.
func MarkNotificationRead(id string) (*models.StudentNotification, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var updated models.StudentNotification
	err = notificationCollection.FindOneAndUpdate(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"isRead": true}},
		findAfter(),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
