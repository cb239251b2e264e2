package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardHistory records every point change for a student. Points is the
// delta: positive for grants, negative for redemptions.
type RewardHistory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Points    int                `bson:"points" json:"points"`
	Reason    string             `bson:"reason" json:"reason"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RedeemedReward records a student spending points on a catalog reward.
type RedeemedReward struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID `bson:"studentId" json:"studentId"`
	RewardID   string             `bson:"rewardId" json:"rewardId"`
	RewardName string             `bson:"rewardName" json:"rewardName"`
	PointsCost int                `bson:"pointsCost" json:"pointsCost"`
	RedeemedAt time.Time          `bson:"redeemedAt" json:"redeemedAt"`
}
