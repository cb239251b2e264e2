package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book availability
const (
	BookAvailable   = "available"
	BookLimited     = "limited"
	BookUnavailable = "unavailable"
)

// Book order statuses
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderCancelled = "cancelled"
)

type Book struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Grade        string             `bson:"grade" json:"grade" validate:"required"`
	ImageKey     string             `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	Availability string             `bson:"availability" json:"availability"` // available | limited | unavailable
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookOrder keeps denormalized student and book names for the support list.
type BookOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	StudentName string             `bson:"studentName" json:"studentName"`
	BookID      primitive.ObjectID `bson:"bookId" json:"bookId"`
	BookName    string             `bson:"bookName" json:"bookName"`
	Price       float64            `bson:"price" json:"price"`

	DeliveryAddress string `bson:"deliveryAddress" json:"deliveryAddress"`
	DeliveryPhone   string `bson:"deliveryPhone" json:"deliveryPhone"`

	Status    string    `bson:"status" json:"status"` // pending | confirmed | shipped | cancelled
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
