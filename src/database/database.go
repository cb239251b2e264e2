package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "TutoriaDB"

var (
	client     *mongo.Client
	once       sync.Once // guard against connecting twice
	connectErr error
)

// ConnectMongoDB connects to MongoDB exactly once. The connection string is
// read from MONGO_URI; the process terminates if it is missing or the first
// ping fails.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
		ensureIndexes()
	})

	return connectErr
}

// ensureIndexes creates the unique sparse indexes the users collection relies
// on: student numbers, teacher codes and phones, support codes. Sparse so
// documents of the other user types are not caught by the constraint.
func ensureIndexes() {
	users := client.Database(DBName).Collection("users")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "studentNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "teacherCode", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "supportCode", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}

	_, err := users.Indexes().CreateMany(context.TODO(), indexes)
	if err != nil {
		log.Println("⚠️ Failed to ensure user indexes:", err)
	}
}

// GetCollection returns a collection handle from the connected client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
