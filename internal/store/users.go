package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gonotes/internal/models"
)

// Users is a models.UserStore backed by a MongoDB collection.
type Users struct {
	col *mongo.Collection
}

// NewUsers returns a user store over the given collection.
func NewUsers(col *mongo.Collection) *Users {
	return &Users{col: col}
}

// Create inserts a new user. Email uniqueness is pre-checked and backstopped
// by the unique index.
func (s *Users) Create(ctx context.Context, user models.User) (*models.User, error) {
	err := s.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return nil, models.ErrAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	user.ID = primitive.NewObjectID()
	user.CreatedOn = time.Now()
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by the live email address, case-sensitive as
// stored.
func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// GetByID retrieves a user by id.
func (s *Users) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *Users) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// SetFullname replaces the display name.
func (s *Users) SetFullname(ctx context.Context, id primitive.ObjectID, fullname string) error {
	return s.update(ctx, id, bson.M{"$set": bson.M{"fullname": fullname}})
}

// SetOTP stores a hashed verification code and its expiry.
func (s *Users) SetOTP(ctx context.Context, id primitive.ObjectID, otpHash string, expires time.Time) error {
	return s.update(ctx, id, bson.M{
		"$set": bson.M{"emailOtp": otpHash, "otpExpires": expires},
	})
}

// MarkEmailVerified flips the verified flag and consumes the code.
func (s *Users) MarkEmailVerified(ctx context.Context, id primitive.ObjectID) error {
	return s.update(ctx, id, bson.M{
		"$set":   bson.M{"emailVerified": true},
		"$unset": bson.M{"emailOtp": "", "otpExpires": ""},
	})
}

// SetPendingEmail records a new address awaiting verification. The live email
// stays untouched until the change completes.
func (s *Users) SetPendingEmail(ctx context.Context, id primitive.ObjectID, email, otpHash string, expires time.Time) error {
	return s.update(ctx, id, bson.M{
		"$set": bson.M{"pendingEmail": email, "emailOtp": otpHash, "otpExpires": expires},
	})
}

// CompleteEmailChange promotes the pending address to the live one.
func (s *Users) CompleteEmailChange(ctx context.Context, id primitive.ObjectID, newEmail string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "pendingEmail": bson.M{"$exists": true}},
		bson.M{
			"$set":   bson.M{"email": newEmail, "emailVerified": true},
			"$unset": bson.M{"pendingEmail": "", "emailOtp": "", "otpExpires": ""},
		})
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNoPendingChange
	}
	return nil
}

// SetPassword replaces the stored hash and consumes any outstanding code.
func (s *Users) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return s.update(ctx, id, bson.M{
		"$set":   bson.M{"password": passwordHash},
		"$unset": bson.M{"emailOtp": "", "otpExpires": ""},
	})
}

func (s *Users) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

var _ models.UserStore = (*Users)(nil)
