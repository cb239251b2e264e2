package services

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var purchaseCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	purchaseCollection = database.GetCollection(database.DBName, "purchasedItems")
	if purchaseCollection == nil {
		log.Fatal("Failed to get the purchasedItems collection")
	}
}

// CreatePurchase resolves the discriminated item reference, debits the
// student's wallet and records the purchase. The debit and the insert are
// two separate writes, not a transaction; see DESIGN.md.
func CreatePurchase(studentID, itemID, itemType string) (*models.PurchasedItem, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}

	var price float64
	var expiresAt *time.Time
	var itemObjID primitive.ObjectID

	switch itemType {
	case models.ItemTypeLesson:
		lesson, err := GetLessonByID(itemID)
		if err != nil {
			return nil, err
		}
		price = lesson.Price
		itemObjID = lesson.ID
	case models.ItemTypeSubscription:
		var sub models.Subscription
		objID, err := parseObjectID(itemID)
		if err != nil {
			return nil, ErrNotFound
		}
		err = subscriptionCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&sub)
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		price = sub.Price
		itemObjID = sub.ID
		exp := time.Now().AddDate(0, 0, sub.DurationDays)
		expiresAt = &exp
	default:
		return nil, ErrNotFound
	}

	if student.WalletBalance < price {
		return nil, ErrInsufficient
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = userCollection.UpdateOne(ctx,
		bson.M{"_id": student.ID},
		bson.M{"$inc": bson.M{"walletBalance": -price}},
	)
	if err != nil {
		return nil, err
	}

	purchase := models.PurchasedItem{
		ID:          primitive.NewObjectID(),
		StudentID:   student.ID,
		ItemID:      itemObjID,
		ItemType:    itemType,
		PricePaid:   price,
		PurchasedAt: time.Now(),
		ExpiresAt:   expiresAt,
	}

	_, err = purchaseCollection.InsertOne(ctx, purchase)
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func GetPurchasesByStudent(studentID string) ([]models.PurchasedItem, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := purchaseCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	purchases := []models.PurchasedItem{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}
