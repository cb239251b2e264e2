package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotifySupport = "support"
	NotifyTeacher = "teacher"
	NotifySystem  = "system"
	NotifyPayment = "payment"
	NotifyExam    = "exam"
	NotifyGeneral = "general"
)

// StudentNotification is a per-student inbox entry. RelatedID is a loosely
// typed reference to whatever entity triggered the notification.
type StudentNotification struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID  `bson:"studentId" json:"studentId"`
	Type       string              `bson:"type" json:"type"` // support | teacher | system | payment | exam | general
	Title      string              `bson:"title" json:"title"`
	Message    string              `bson:"message" json:"message"`
	IsRead     bool                `bson:"isRead" json:"isRead"`
	AllowReply bool                `bson:"allowReply" json:"allowReply"`
	RelatedID  *primitive.ObjectID `bson:"relatedId,omitempty" json:"relatedId,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}
