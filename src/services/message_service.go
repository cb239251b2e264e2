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

var studentMessageCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	studentMessageCollection = database.GetCollection(database.DBName, "studentMessages")
	if studentMessageCollection == nil {
		log.Fatal("Failed to get the studentMessages collection")
	}
}

// CreateStudentMessage opens a new thread with the student's name
// denormalized.
func CreateStudentMessage(msg *models.StudentMessage) error {
	student, err := GetStudentByID(msg.StudentID.Hex())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg.ID = primitive.NewObjectID()
	msg.StudentName = student.FullName
	msg.IsRead = false
	msg.IsAnswered = false
	msg.Replies = []models.MessageReply{}
	msg.CreatedAt = time.Now()

	_, err = studentMessageCollection.InsertOne(ctx, msg)
	return err
}

func GetAllStudentMessages() ([]models.StudentMessage, error) {
	return findStudentMessages(bson.M{})
}

func GetStudentMessagesByStudent(studentID string) ([]models.StudentMessage, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}
	return findStudentMessages(bson.M{"studentId": objID})
}

func findStudentMessages(filter bson.M) ([]models.StudentMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := studentMessageCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.StudentMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// AddMessageReply appends a reply to the thread, marks it answered and
// notifies the student.
func AddMessageReply(messageID string, reply models.MessageReply) (*models.StudentMessage, error) {
	objID, err := parseObjectID(messageID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reply.RepliedAt = time.Now()

	var updated models.StudentMessage
	err = studentMessageCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{
			"$push": bson.M{"replies": reply},
			"$set":  bson.M{"isAnswered": true, "isRead": true},
		},
		findAfter(),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	_ = CreateNotification(&models.StudentNotification{
		StudentID:  updated.StudentID,
		Type:       models.NotifySupport,
		Title:      "Reply: " + updated.Subject,
		Message:    reply.Text,
		AllowReply: true,
		RelatedID:  &updated.ID,
	})

	return &updated, nil
}
