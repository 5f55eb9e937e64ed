package db

import (
	"context"
	"os"
	"time"

	"toolbase/logx"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	ToolsCollection    *mongo.Collection
	PurchaseCollection *mongo.Collection
	UserCollection     *mongo.Collection
	ReviewsCollection  *mongo.Collection
	PaymentsCollection *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "best_tools_manufacturer"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		logx.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ToolsCollection = Client.Database(dbName).Collection("tools")
	PurchaseCollection = Client.Database(dbName).Collection("purchase")
	UserCollection = Client.Database(dbName).Collection("users")
	ReviewsCollection = Client.Database(dbName).Collection("reviews")
	PaymentsCollection = Client.Database(dbName).Collection("payments")

	// connection is lazy; index creation must not block startup when the
	// store is still coming up
	go CreateIndexes(Client)
}

// CreateIndexes enforces the uniqueness rules the handlers rely on:
// one user document per email, and at most one purchase per (toolid, email).
// The purchase index is what makes the duplicate guard atomic; the insert
// itself fails with a duplicate-key error instead of racing a pre-check.
func CreateIndexes(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logx.Warn("users email index", zap.Error(err))
	}

	_, err = PurchaseCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "toolid", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logx.Warn("purchase toolid+email index", zap.Error(err))
	}
}
