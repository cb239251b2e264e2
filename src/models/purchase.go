package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchasedItem item discriminator values
const (
	ItemTypeLesson       = "lesson"
	ItemTypeSubscription = "subscription"
)

// PurchasedItem records a student buying a lesson or a subscription.
// ItemType tells which collection ItemID resolves against. ExpiresAt is set
// only for subscriptions.
type PurchasedItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	ItemID      primitive.ObjectID `bson:"itemId" json:"itemId"`
	ItemType    string             `bson:"itemType" json:"itemType"` // lesson | subscription
	PricePaid   float64            `bson:"pricePaid" json:"pricePaid"`
	PurchasedAt time.Time          `bson:"purchasedAt" json:"purchasedAt"`
	ExpiresAt   *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}
