package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Broadcast priorities
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// GeneralMessage is a broadcast from a teacher to a grade (or everyone).
type GeneralMessage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Audience     string             `bson:"audience" json:"audience" validate:"required"` // all | first | second | third
	Title        string             `bson:"title" json:"title" validate:"required"`
	Content      string             `bson:"content" json:"content" validate:"required"`
	DurationDays int                `bson:"durationDays" json:"durationDays"`
	Priority     string             `bson:"priority" json:"priority"` // normal | high | urgent
	TeacherID    primitive.ObjectID `bson:"teacherId" json:"teacherId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
