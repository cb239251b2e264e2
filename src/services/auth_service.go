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
)

var userCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	userCollection = database.GetCollection(database.DBName, "users")
	if userCollection == nil {
		log.Fatal("Failed to get the users collection")
	}
}

// Hardcoded teacher credential triple. This is a placeholder inherited from
// the original platform, not a real login flow; see DESIGN.md.
const (
	teacherName  = "Mahmoud"
	teacherCode  = "TCH-0001"
	teacherPhone = "01000000000"
)

// RegisterStudent creates a new student user with a zeroed wallet and no
// points. Returns ErrDuplicate when the student number or full name is
// already taken.
func RegisterStudent(fullName, studentNumber, parentNumber, password, gradeLevel string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"type": models.UserTypeStudent,
		"$or": []bson.M{
			{"studentNumber": studentNumber},
			{"fullName": fullName},
		},
	}
	count, err := userCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	student := models.User{
		FullName:      fullName,
		Password:      hashed,
		Type:          models.UserTypeStudent,
		CreatedAt:     now,
		LastActivity:  now,
		StudentNumber: studentNumber,
		ParentNumber:  parentNumber,
		GradeLevel:    gradeLevel,
		WalletBalance: 0,
		RewardPoints:  0,
		Ban:           &models.BanInfo{IsBanned: false},
	}

	res, err := userCollection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	student.ID = res.InsertedID.(primitive.ObjectID)
	return &student, nil
}

// TeacherLogin checks the submitted triple against the hardcoded credentials
// and finds-or-creates the single teacher user on success.
func TeacherLogin(name, code, phone string) (*models.User, error) {
	if name != teacherName || code != teacherCode || phone != teacherPhone {
		return nil, ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var teacher models.User
	err := userCollection.FindOne(ctx, bson.M{"type": models.UserTypeTeacher, "teacherCode": code}).Decode(&teacher)
	if err == nil {
		_, _ = userCollection.UpdateOne(ctx, bson.M{"_id": teacher.ID}, bson.M{"$set": bson.M{"lastActivity": time.Now()}})
		return &teacher, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// first login ever: create the teacher document with a placeholder hash
	hashed, err := utils.HashPassword(code + phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	teacher = models.User{
		FullName:     name,
		Password:     hashed,
		Type:         models.UserTypeTeacher,
		CreatedAt:    now,
		LastActivity: now,
		TeacherCode:  code,
		Phone:        phone,
	}

	res, err := userCollection.InsertOne(ctx, teacher)
	if err != nil {
		return nil, err
	}

	teacher.ID = res.InsertedID.(primitive.ObjectID)
	return &teacher, nil
}

// SupportLogin looks a support user up by name and code, flips the online
// flag and stamps activity. No password verification on this path.
func SupportLogin(name, code string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var support models.User
	err := userCollection.FindOne(ctx, bson.M{
		"type":        models.UserTypeSupport,
		"fullName":    name,
		"supportCode": code,
	}).Decode(&support)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = userCollection.UpdateOne(ctx, bson.M{"_id": support.ID}, bson.M{
		"$set": bson.M{"isOnline": true, "lastActivity": now},
	})
	if err != nil {
		return nil, err
	}

	support.IsOnline = true
	support.LastActivity = now
	return &support, nil
}

// SupportLogout flips the online flag off and stamps the logout time.
func SupportLogout(supportID string) error {
	objID, err := parseObjectID(supportID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	res, err := userCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "type": models.UserTypeSupport},
		bson.M{"$set": bson.M{"isOnline": false, "lastLogout": now, "lastActivity": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
