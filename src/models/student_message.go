package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageReply is embedded in a StudentMessage thread.
type MessageReply struct {
	ResponderID primitive.ObjectID `bson:"responderId" json:"responderId"`
	Text        string             `bson:"text" json:"text"`
	ImageKey    string             `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	AudioKey    string             `bson:"audioKey,omitempty" json:"audioKey,omitempty"`
	RepliedAt   time.Time          `bson:"repliedAt" json:"repliedAt"`
}

// StudentMessage is a question a student sends to staff, optionally tied to
// a lesson. Replies are appended in order; the thread itself is append-only.
type StudentMessage struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID  `bson:"studentId" json:"studentId"`
	StudentName string              `bson:"studentName" json:"studentName"`
	LessonID    *primitive.ObjectID `bson:"lessonId,omitempty" json:"lessonId,omitempty"`
	Subject     string              `bson:"subject" json:"subject" validate:"required"`
	Body        string              `bson:"body" json:"body" validate:"required"`
	ImageKey    string              `bson:"imageKey,omitempty" json:"imageKey,omitempty"`

	IsRead     bool           `bson:"isRead" json:"isRead"`
	IsAnswered bool           `bson:"isAnswered" json:"isAnswered"`
	Replies    []MessageReply `bson:"replies" json:"replies"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
}
