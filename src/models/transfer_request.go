package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transfer request statuses
const (
	TransferPending   = "pending"
	TransferConfirmed = "confirmed"
	TransferRejected  = "rejected"
)

// TransferRequest is a wallet top-up request awaiting support review.
// StudentName is denormalized so the support list view needs no join.
type TransferRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID       primitive.ObjectID `bson:"studentId" json:"studentId"`
	StudentName     string             `bson:"studentName" json:"studentName"`
	Amount          float64            `bson:"amount" json:"amount" validate:"gt=0"`
	PaymentMethodID primitive.ObjectID `bson:"paymentMethodId" json:"paymentMethodId"`
	BankTransNumber string             `bson:"bankTransNumber" json:"bankTransNumber"`
	TransferredAt   time.Time          `bson:"transferredAt" json:"transferredAt"`
	Message         string             `bson:"message,omitempty" json:"message,omitempty"`
	ReceiptImageKey string             `bson:"receiptImageKey,omitempty" json:"receiptImageKey,omitempty"`

	Status      string              `bson:"status" json:"status"` // pending | confirmed | rejected
	ConfirmedBy *primitive.ObjectID `bson:"confirmedBy,omitempty" json:"confirmedBy,omitempty"`
	ConfirmedAt *time.Time          `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	ReceiptRef  string              `bson:"receiptRef,omitempty" json:"receiptRef,omitempty"`
}
