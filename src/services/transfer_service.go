package services

import (
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/models"
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var transferCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	transferCollection = database.GetCollection(database.DBName, "transferRequests")
	if transferCollection == nil {
		log.Fatal("Failed to get the transferRequests collection")
	}
}

// CreateTransferRequest files a pending top-up with the student's name
// denormalized for the support list view.
func CreateTransferRequest(req *models.TransferRequest) error {
	student, err := GetStudentByID(req.StudentID.Hex())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req.ID = primitive.NewObjectID()
	req.StudentName = student.FullName
	req.Status = models.TransferPending
	if req.TransferredAt.IsZero() {
		req.TransferredAt = time.Now()
	}

	_, err = transferCollection.InsertOne(ctx, req)
	return err
}

func GetAllTransferRequests() ([]models.TransferRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := transferCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.TransferRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ConfirmTransferRequest credits the student's wallet, stamps the request
// with the confirming support user plus a generated receipt reference, and
// leaves a payment notification and an audit entry. Only pending requests
// can be confirmed.
func ConfirmTransferRequest(id string, support *models.User) (*models.TransferRequest, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var req models.TransferRequest
	err = transferCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.Status != models.TransferPending {
		return nil, ErrConflict
	}

	now := time.Now()
	receiptRef := uuid.NewString()
	err = transferCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "status": models.TransferPending},
		bson.M{"$set": bson.M{
			"status":      models.TransferConfirmed,
			"confirmedBy": support.ID,
			"confirmedAt": now,
			"receiptRef":  receiptRef,
		}},
		findAfter(),
	).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	_, err = userCollection.UpdateOne(ctx,
		bson.M{"_id": req.StudentID},
		bson.M{"$inc": bson.M{"walletBalance": req.Amount}},
	)
	if err != nil {
		return nil, err
	}

	_ = CreateNotification(&models.StudentNotification{
		StudentID: req.StudentID,
		Type:      models.NotifyPayment,
		Title:     "Wallet topped up",
		Message:   "Your transfer was confirmed and your wallet has been credited.",
		RelatedID: &req.ID,
	})
	LogSupportAction(support, "confirm_transfer", map[string]interface{}{
		"transferRequestId": req.ID.Hex(),
		"amount":            req.Amount,
		"receiptRef":        receiptRef,
	})

	return &req, nil
}

// RejectTransferRequest marks a pending request rejected.
func RejectTransferRequest(id string, support *models.User) (*models.TransferRequest, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var req models.TransferRequest
	now := time.Now()
	err = transferCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "status": models.TransferPending},
		bson.M{"$set": bson.M{
			"status":      models.TransferRejected,
			"confirmedBy": support.ID,
			"confirmedAt": now,
		}},
		findAfter(),
	).Decode(&req)
	if err == mongo.ErrNoDocuments {
		// distinguish missing from already-handled
		count, countErr := transferCollection.CountDocuments(ctx, bson.M{"_id": objID})
		if countErr == nil && count > 0 {
			return nil, ErrConflict
		}
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	LogSupportAction(support, "reject_transfer", map[string]interface{}{
		"transferRequestId": req.ID.Hex(),
		"amount":            req.Amount,
	})

	return &req, nil
}
