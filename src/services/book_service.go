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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var bookCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	bookCollection = database.GetCollection(database.DBName, "books")
	if bookCollection == nil {
		log.Fatal("Failed to get the books collection")
	}
}

func CreateBook(book *models.Book) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	book.ID = primitive.NewObjectID()
	book.CreatedAt = time.Now()
	if book.Availability == "" {
		book.Availability = models.BookAvailable
	}

	_, err := bookCollection.InsertOne(ctx, book)
	return err
}

func GetAllBooks() ([]models.Book, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := bookCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func GetBookByID(id string) (*models.Book, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var book models.Book
	err = bookCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func UpdateBook(id string, fields bson.M) (*models.Book, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := utils.SetFields(fields)
	if len(set) == 0 {
		return GetBookByID(id)
	}

	var updated models.Book
	err = bookCollection.FindOneAndUpdate(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteBook(id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := bookCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
