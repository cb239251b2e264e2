package services

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/utils"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var paymentMethodCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	paymentMethodCollection = database.GetCollection(database.DBName, "paymentMethods")
	if paymentMethodCollection == nil {
		log.Fatal("Failed to get the paymentMethods collection")
	}
}

// CreatePaymentMethod hashes the control password before storing it. The
// plaintext is only ever needed again to authorize deletion.
func CreatePaymentMethod(method *models.PaymentMethod, controlPassword string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hashed, err := utils.HashPassword(controlPassword)
	if err != nil {
		return err
	}

	method.ID = primitive.NewObjectID()
	method.Password = hashed

	_, err = paymentMethodCollection.InsertOne(ctx, method)
	return err
}

// GetAllPaymentMethods lists every method. The password hash never leaves
// this service: the field is json:"-" and cleared here as well.
func GetAllPaymentMethods() ([]models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := paymentMethodCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	methods := []models.PaymentMethod{}
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, err
	}
	for i := range methods {
		methods[i].Password = ""
	}
	return methods, nil
}

// DeletePaymentMethod removes a method only when the supplied control
// password matches the stored hash.
func DeletePaymentMethod(id, controlPassword string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var method models.PaymentMethod
	err = paymentMethodCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&method)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !utils.CheckPassword(method.Password, controlPassword) {
		return ErrUnauthorized
	}

	_, err = paymentMethodCollection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
