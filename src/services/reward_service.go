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

var (
	rewardHistoryCollection  *mongo.Collection
	redeemedRewardCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	rewardHistoryCollection = database.GetCollection(database.DBName, "rewardHistories")
	redeemedRewardCollection = database.GetCollection(database.DBName, "redeemedRewards")
	if rewardHistoryCollection == nil || redeemedRewardCollection == nil {
		log.Fatal("Failed to get the reward collections")
	}
}

// RedeemReward spends a student's points on a reward: deducts the cost,
// records the redemption and a negative history entry. The deduction and
// the inserts are separate writes, not a transaction.
func RedeemReward(studentID, rewardID, rewardName string, pointsCost int) (*models.RedeemedReward, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}
	if student.RewardPoints < pointsCost {
		return nil, ErrInsufficient
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = userCollection.UpdateOne(ctx,
		bson.M{"_id": student.ID},
		bson.M{"$inc": bson.M{"rewardPoints": -pointsCost}},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	redeemed := models.RedeemedReward{
		ID:         primitive.NewObjectID(),
		StudentID:  student.ID,
		RewardID:   rewardID,
		RewardName: rewardName,
		PointsCost: pointsCost,
		RedeemedAt: now,
	}
	if _, err := redeemedRewardCollection.InsertOne(ctx, redeemed); err != nil {
		return nil, err
	}

	history := models.RewardHistory{
		ID:        primitive.NewObjectID(),
		StudentID: student.ID,
		Points:    -pointsCost,
		Reason:    "Redeemed: " + rewardName,
		CreatedAt: now,
	}
	if _, err := rewardHistoryCollection.InsertOne(ctx, history); err != nil {
		return nil, err
	}

	return &redeemed, nil
}

// GrantRewardPoints credits points to a student and records the delta.
func GrantRewardPoints(studentID string, points int, reason string) (*models.RewardHistory, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = userCollection.UpdateOne(ctx,
		bson.M{"_id": student.ID},
		bson.M{"$inc": bson.M{"rewardPoints": points}},
	)
	if err != nil {
		return nil, err
	}

	history := models.RewardHistory{
		ID:        primitive.NewObjectID(),
		StudentID: student.ID,
		Points:    points,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if _, err := rewardHistoryCollection.InsertOne(ctx, history); err != nil {
		return nil, err
	}
	return &history, nil
}

func GetRewardHistory(studentID string) ([]models.RewardHistory, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := rewardHistoryCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	history := []models.RewardHistory{}
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func GetRedeemedRewards(studentID string) ([]models.RedeemedReward, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := redeemedRewardCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	redeemed := []models.RedeemedReward{}
	if err := cursor.All(ctx, &redeemed); err != nil {
		return nil, err
	}
	return redeemed, nil
}
