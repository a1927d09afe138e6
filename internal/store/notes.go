package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gonotes/internal/models"
)

// Notes is a models.NoteStore backed by a MongoDB collection.
type Notes struct {
	col *mongo.Collection
}

// NewNotes returns a note store over the given collection.
func NewNotes(col *mongo.Collection) *Notes {
	return &Notes{col: col}
}

// pinned notes sort before unpinned ones, creation order within each group
var listOrder = bson.D{{Key: "isPinned", Value: -1}, {Key: "createdOn", Value: 1}}

func scoped(ownerID, noteID primitive.ObjectID) bson.M {
	return bson.M{"_id": noteID, "ownerId": ownerID}
}

// Create inserts a new note for its owner.
func (s *Notes) Create(ctx context.Context, note models.Note) (*models.Note, error) {
	if note.Title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if note.Content == "" {
		return nil, fmt.Errorf("%w: content is required", models.ErrValidation)
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	note.ID = primitive.NewObjectID()
	note.CreatedOn = time.Now()
	if _, err := s.col.InsertOne(ctx, note); err != nil {
		return nil, fmt.Errorf("error inserting note: %w", err)
	}
	return &note, nil
}

// Update applies a merge-patch: only fields present in the patch change.
func (s *Notes) Update(ctx context.Context, ownerID, noteID primitive.ObjectID, patch models.NotePatch) (*models.Note, error) {
	if patch.Empty() {
		return nil, models.ErrNoChanges
	}

	set := bson.M{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", models.ErrValidation)
		}
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		if *patch.Content == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", models.ErrValidation)
		}
		set["content"] = *patch.Content
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.IsPinned != nil {
		set["isPinned"] = *patch.IsPinned
	}

	res := s.col.FindOneAndUpdate(ctx, scoped(ownerID, noteID), bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	var note models.Note
	if err := res.Decode(&note); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("error updating note: %w", err)
	}
	return &note, nil
}

// SetPinned sets the pin flag unconditionally, so unpinning with false works.
func (s *Notes) SetPinned(ctx context.Context, ownerID, noteID primitive.ObjectID, pinned bool) error {
	res, err := s.col.UpdateOne(ctx, scoped(ownerID, noteID), bson.M{"$set": bson.M{"isPinned": pinned}})
	if err != nil {
		return fmt.Errorf("error updating note: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a note permanently.
func (s *Notes) Delete(ctx context.Context, ownerID, noteID primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, scoped(ownerID, noteID))
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListOwned returns all of the owner's notes, pinned first.
func (s *Notes) ListOwned(ctx context.Context, ownerID primitive.ObjectID) ([]models.Note, error) {
	cur, err := s.col.Find(ctx, bson.M{"ownerId": ownerID}, options.Find().SetSort(listOrder))
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	notes := []models.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("error decoding notes: %w", err)
	}
	return notes, nil
}

// Search matches a case-insensitive substring against title, content or any
// tag. The query is quoted so regex metacharacters match literally.
func (s *Notes) Search(ctx context.Context, ownerID primitive.ObjectID, query string) ([]models.Note, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", models.ErrValidation)
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"ownerId": ownerID,
		"$or": []bson.M{
			{"title": pattern},
			{"content": pattern},
			{"tags": pattern},
		},
	}
	cur, err := s.col.Find(ctx, filter, options.Find().SetSort(listOrder))
	if err != nil {
		return nil, fmt.Errorf("error searching notes: %w", err)
	}
	notes := []models.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("error decoding notes: %w", err)
	}
	return notes, nil
}

var _ models.NoteStore = (*Notes)(nil)
