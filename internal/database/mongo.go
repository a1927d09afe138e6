package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes a connection to MongoDB and returns the client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	// Ping the database to verify the connection before serving traffic.
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// UserCollection returns the MongoDB collection for users.
func UserCollection(client *mongo.Client, db string) *mongo.Collection {
	return client.Database(db).Collection("users")
}

// NoteCollection returns the MongoDB collection for notes.
func NoteCollection(client *mongo.Client, db string) *mongo.Collection {
	return client.Database(db).Collection("notes")
}

// EnsureIndexes creates the indexes the stores rely on: unique user emails and
// owner scoping on notes.
func EnsureIndexes(ctx context.Context, client *mongo.Client, db string) error {
	_, err := UserCollection(client, db).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = NoteCollection(client, db).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}},
	})
	return err
}
