package services

import (
	"Backend-Tutoria-001/src/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Student reads and moderation live on the users collection bound in
// auth_service.go.

func GetAllStudents() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := userCollection.Find(ctx, bson.M{"type": models.UserTypeStudent})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []models.User{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func GetStudentByID(id string) (*models.User, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var student models.User
	err = userCollection.FindOne(context.Background(),
		bson.M{"_id": objID, "type": models.UserTypeStudent}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// BanStudent marks a student banned with a discriminated reference to the
// banning teacher or support user, and drops a notification in their inbox.
// Banning an already-banned student overwrites the ban fields.
func BanStudent(studentID, reason string, bannedBy primitive.ObjectID, bannedByType string) (*models.User, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	ban := models.BanInfo{
		IsBanned:     true,
		Reason:       reason,
		BannedAt:     &now,
		BannedBy:     bannedBy,
		BannedByType: bannedByType,
	}

	_, err = userCollection.UpdateOne(ctx, bson.M{"_id": student.ID}, bson.M{"$set": bson.M{"ban": ban}})
	if err != nil {
		return nil, err
	}
	student.Ban = &ban

	notifType := models.NotifySupport
	if bannedByType == models.UserTypeTeacher {
		notifType = models.NotifyTeacher
	}
	_ = CreateNotification(&models.StudentNotification{
		StudentID: student.ID,
		Type:      notifType,
		Title:     "Account banned",
		Message:   reason,
	})

	return student, nil
}

// UnbanStudent clears the ban fields.
func UnbanStudent(studentID string) (*models.User, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ban := models.BanInfo{IsBanned: false}
	_, err = userCollection.UpdateOne(ctx, bson.M{"_id": student.ID}, bson.M{"$set": bson.M{"ban": ban}})
	if err != nil {
		return nil, err
	}
	student.Ban = &ban
	return student, nil
}
