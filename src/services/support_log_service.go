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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var supportLogCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	supportLogCollection = database.GetCollection(database.DBName, "supportActivityLogs")
	if supportLogCollection == nil {
		log.Fatal("Failed to get the supportActivityLogs collection")
	}
}

// LogSupportAction appends an audit entry. Logging must never fail the
// action it describes, so errors are only logged.
func LogSupportAction(support *models.User, action string, detail map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := models.SupportActivityLog{
		ID:          primitive.NewObjectID(),
		SupportID:   support.ID,
		SupportName: support.FullName,
		Action:      action,
		Detail:      detail,
		CreatedAt:   time.Now(),
	}

	if _, err := supportLogCollection.InsertOne(ctx, entry); err != nil {
		log.Println("⚠️ Failed to write support activity log:", err)
	}
}

// GetSupportActivityLogs lists audit entries, newest first.
func GetSupportActivityLogs() ([]models.SupportActivityLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := supportLogCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []models.SupportActivityLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetSupportByID resolves a support user for handlers that attribute
// actions to one.
func GetSupportByID(id string) (*models.User, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var support models.User
	err = userCollection.FindOne(context.Background(),
		bson.M{"_id": objID, "type": models.UserTypeSupport}).Decode(&support)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &support, nil
}
