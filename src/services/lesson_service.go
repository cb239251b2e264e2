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

var lessonCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	lessonCollection = database.GetCollection(database.DBName, "lessons")
	if lessonCollection == nil {
		log.Fatal("Failed to get the lessons collection")
	}
}

// CreateLesson persists a new lesson, active by default.
func CreateLesson(lesson *models.Lesson) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	lesson.ID = primitive.NewObjectID()
	lesson.IsActive = true
	lesson.CreatedAt = now
	lesson.UpdatedAt = now
	if lesson.ExamQuestions == nil {
		lesson.ExamQuestions = []models.ExamQuestion{}
	}

	_, err := lessonCollection.InsertOne(ctx, lesson)
	return err
}

// GetAllLessons returns every lesson, unfiltered.
func GetAllLessons() ([]models.Lesson, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := lessonCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	lessons := []models.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func GetLessonByID(id string) (*models.Lesson, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var lesson models.Lesson
	err = lessonCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&lesson)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// UpdateLesson merges the supplied fields into the lesson and returns the
// updated document.
func UpdateLesson(id string, fields bson.M) (*models.Lesson, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := utils.SetFields(fields)
	set["updatedAt"] = time.Now()

	var updated models.Lesson
	err = lessonCollection.FindOneAndUpdate(context.Background(),
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

func DeleteLesson(id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := lessonCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
