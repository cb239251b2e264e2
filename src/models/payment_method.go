package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PaymentMethod is a bank/wallet account students can transfer to. Password
// is a bcrypt hash gating deletion, stored but never serialized to JSON.
type PaymentMethod struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Number   string             `bson:"number" json:"number" validate:"required"`
	Password string             `bson:"password" json:"-"`
}
