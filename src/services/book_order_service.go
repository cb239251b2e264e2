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

var bookOrderCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	bookOrderCollection = database.GetCollection(database.DBName, "bookOrders")
	if bookOrderCollection == nil {
		log.Fatal("Failed to get the bookOrders collection")
	}
}

// CreateBookOrder places a pending order, denormalizing the student and
// book names and taking the price from the book document.
func CreateBookOrder(studentID, bookID, deliveryAddress, deliveryPhone string) (*models.BookOrder, error) {
	student, err := GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}
	book, err := GetBookByID(bookID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order := models.BookOrder{
		ID:              primitive.NewObjectID(),
		StudentID:       student.ID,
		StudentName:     student.FullName,
		BookID:          book.ID,
		BookName:        book.Name,
		Price:           book.Price,
		DeliveryAddress: deliveryAddress,
		DeliveryPhone:   deliveryPhone,
		Status:          models.OrderPending,
		CreatedAt:       time.Now(),
	}

	_, err = bookOrderCollection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func GetAllBookOrders() ([]models.BookOrder, error) {
	return findBookOrders(bson.M{})
}

func GetBookOrdersByStudent(studentID string) ([]models.BookOrder, error) {
	objID, err := parseObjectID(studentID)
	if err != nil {
		return nil, ErrNotFound
	}
	return findBookOrders(bson.M{"studentId": objID})
}

func findBookOrders(filter bson.M) ([]models.BookOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := bookOrderCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.BookOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateBookOrderStatus moves an order through its lifecycle.
func UpdateBookOrderStatus(id, status string) (*models.BookOrder, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var updated models.BookOrder
	err = bookOrderCollection.FindOneAndUpdate(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status}},
		findAfter(),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
