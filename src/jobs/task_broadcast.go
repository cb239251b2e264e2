package jobs

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/models"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleBroadcastDeliverTask fans a general message out into per-student
// notifications for the target audience. A deleted message is not an error,
// the task just has nothing left to do.
func HandleBroadcastDeliverTask(ctx context.Context, t *asynq.Task) error {
	var payload BroadcastPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	messages := database.GetCollection(database.DBName, "generalMessages")
	id, _ := primitive.ObjectIDFromHex(payload.MessageID)

	var msg models.GeneralMessage
	err := messages.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ General message not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		log.Println("❌ Failed to find general message:", err)
		return err
	}

	filter := bson.M{"type": models.UserTypeStudent}
	if msg.Audience != models.GradeAll {
		filter["gradeLevel"] = msg.Audience
	}

	users := database.GetCollection(database.DBName, "users")
	cursor, err := users.Find(ctx, filter)
	if err != nil {
		log.Println("❌ Failed to list broadcast audience:", err)
		return err
	}
	defer cursor.Close(ctx)

	notifications := database.GetCollection(database.DBName, "studentNotifications")
	delivered := 0
	for cursor.Next(ctx) {
		var student models.User
		if err := cursor.Decode(&student); err != nil {
			return err
		}

		notification := models.StudentNotification{
			ID:        primitive.NewObjectID(),
			StudentID: student.ID,
			Type:      models.NotifyGeneral,
			Title:     msg.Title,
			Message:   msg.Content,
			RelatedID: &msg.ID,
			CreatedAt: time.Now(),
		}
		if _, err := notifications.InsertOne(ctx, notification); err != nil {
			log.Println("❌ Failed to deliver broadcast notification:", err)
			return err
		}
		delivered++
	}

	log.Printf("✅ Broadcast %s delivered to %d students", id.Hex(), delivered)
	return nil
}
