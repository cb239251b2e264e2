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

var examResultCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	examResultCollection = database.GetCollection(database.DBName, "examResults")
	if examResultCollection == nil {
		log.Fatal("Failed to get the examResults collection")
	}
}

// SubmitExamResult grades the submitted answers against the lesson's
// embedded questions and records the result with denormalized names.
// Results are append-only.
func SubmitExamResult(studentID, lessonID string, answers []int) (*models.ExamResult, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}
	lesson, err := GetLessonByID(lessonID)
	if err != nil {
		return nil, err
	}

	correct, score, passed := models.GradeAnswers(lesson.ExamQuestions, answers)
	if answers == nil {
		answers = []int{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := models.ExamResult{
		ID:           primitive.NewObjectID(),
		StudentID:    student.ID,
		StudentName:  student.FullName,
		LessonID:     lesson.ID,
		LessonTitle:  lesson.Title,
		Score:        score,
		CorrectCount: correct,
		TotalCount:   len(lesson.ExamQuestions),
		Answers:      answers,
		Passed:       passed,
		SubmittedAt:  time.Now(),
	}

	_, err = examResultCollection.InsertOne(ctx, result)
	if err != nil {
		return nil, err
	}

	_ = CreateNotification(&models.StudentNotification{
		StudentID: student.ID,
		Type:      models.NotifyExam,
		Title:     "Exam graded: " + lesson.Title,
		Message:   resultMessage(passed),
		RelatedID: &result.ID,
	})

	return &result, nil
}

func resultMessage(passed bool) string {
	if passed {
		return "Congratulations, you passed the exam."
	}
	return "You did not pass this time. Review the lesson and try again."
}

func GetExamResultsByStudent(studentID string) ([]models.ExamResult, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}
	return findExamResults(bson.M{"studentId": objID})
}

func GetExamResultsByLesson(lessonID string) ([]models.ExamResult, error) {
	objID, err := parseObjectID(lessonID)
	if err != nil {
		return nil, ErrNotFound
	}
	return findExamResults(bson.M{"lessonId": objID})
}

func findExamResults(filter bson.M) ([]models.ExamResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := examResultCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.ExamResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
