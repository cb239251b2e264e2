package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription bundles lessons for a fixed number of days.
type Subscription struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name" validate:"required"`
	Description  string               `bson:"description" json:"description"`
	Price        float64              `bson:"price" json:"price" validate:"gte=0"`
	ImageKey     string               `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	DurationDays int                  `bson:"durationDays" json:"durationDays" validate:"gt=0"`
	LessonIDs    []primitive.ObjectID `bson:"lessonIds" json:"lessonIds"`
	IsActive     bool                 `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
