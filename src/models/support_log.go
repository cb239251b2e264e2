package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportActivityLog is an append-only audit entry for support actions
// (transfer confirmations, bans, order updates). Detail is free-form.
type SupportActivityLog struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	SupportID   primitive.ObjectID     `bson:"supportId" json:"supportId"`
	SupportName string                 `bson:"supportName" json:"supportName"`
	Action      string                 `bson:"action" json:"action"`
	Detail      map[string]interface{} `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`
}
