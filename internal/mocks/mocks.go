// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gonotes/internal/models"
)

// UserStore mocks models.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) SetFullname(ctx context.Context, id primitive.ObjectID, fullname string) error {
	return m.Called(ctx, id, fullname).Error(0)
}

func (m *UserStore) SetOTP(ctx context.Context, id primitive.ObjectID, otpHash string, expires time.Time) error {
	return m.Called(ctx, id, otpHash, expires).Error(0)
}

func (m *UserStore) MarkEmailVerified(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserStore) SetPendingEmail(ctx context.Context, id primitive.ObjectID, email, otpHash string, expires time.Time) error {
	return m.Called(ctx, id, email, otpHash, expires).Error(0)
}

func (m *UserStore) CompleteEmailChange(ctx context.Context, id primitive.ObjectID, newEmail string) error {
	return m.Called(ctx, id, newEmail).Error(0)
}

func (m *UserStore) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

// NoteStore mocks models.NoteStore.
type NoteStore struct {
	mock.Mock
}

func (m *NoteStore) Create(ctx context.Context, note models.Note) (*models.Note, error) {
	args := m.Called(ctx, note)
	if n, ok := args.Get(0).(*models.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteStore) Update(ctx context.Context, ownerID, noteID primitive.ObjectID, patch models.NotePatch) (*models.Note, error) {
	args := m.Called(ctx, ownerID, noteID, patch)
	if n, ok := args.Get(0).(*models.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteStore) SetPinned(ctx context.Context, ownerID, noteID primitive.ObjectID, pinned bool) error {
	return m.Called(ctx, ownerID, noteID, pinned).Error(0)
}

func (m *NoteStore) Delete(ctx context.Context, ownerID, noteID primitive.ObjectID) error {
	return m.Called(ctx, ownerID, noteID).Error(0)
}

func (m *NoteStore) ListOwned(ctx context.Context, ownerID primitive.ObjectID) ([]models.Note, error) {
	args := m.Called(ctx, ownerID)
	if n, ok := args.Get(0).([]models.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteStore) Search(ctx context.Context, ownerID primitive.ObjectID, query string) ([]models.Note, error) {
	args := m.Called(ctx, ownerID, query)
	if n, ok := args.Get(0).([]models.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

// TokenManager mocks models.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(userID primitive.ObjectID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Verify(token string) (primitive.ObjectID, error) {
	args := m.Called(token)
	if id, ok := args.Get(0).(primitive.ObjectID); ok {
		return id, args.Error(1)
	}
	return primitive.NilObjectID, args.Error(1)
}

// Mailer mocks models.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}
