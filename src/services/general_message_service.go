package services

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/jobs"
	"Backend-Tutoria-001/src/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var generalMessageCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	generalMessageCollection = database.GetCollection(database.DBName, "generalMessages")
	if generalMessageCollection == nil {
		log.Fatal("Failed to get the generalMessages collection")
	}
}

// CreateGeneralMessage persists the broadcast and, when the asynq client is
// up, enqueues the notification fan-out for the target audience.
func CreateGeneralMessage(msg *models.GeneralMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now()
	if msg.Priority == "" {
		msg.Priority = models.PriorityNormal
	}

	_, err := generalMessageCollection.InsertOne(ctx, msg)
	if err != nil {
		return err
	}

	if database.AsynqClient != nil {
		task, err := jobs.NewBroadcastTask(msg.ID.Hex())
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err != nil {
				log.Println("⚠️ Failed to enqueue broadcast fan-out:", err)
			}
		}
	}

	return nil
}

func GetAllGeneralMessages() ([]models.GeneralMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := generalMessageCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.GeneralMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func DeleteGeneralMessage(id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := generalMessageCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
