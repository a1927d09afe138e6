package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore persists User documents and their verification state transitions.
type UserStore interface {
	// Create inserts a new unverified user. Fails with ErrAlreadyExists when
	// the email is taken.
	Create(ctx context.Context, user User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	SetFullname(ctx context.Context, id primitive.ObjectID, fullname string) error
	// SetOTP stores a hashed code and its expiry, for signup verification and
	// password recovery.
	SetOTP(ctx context.Context, id primitive.ObjectID, otpHash string, expires time.Time) error
	// MarkEmailVerified flips the verified flag and clears the OTP pair.
	MarkEmailVerified(ctx context.Context, id primitive.ObjectID) error
	// SetPendingEmail records a new address awaiting verification without
	// touching the live email.
	SetPendingEmail(ctx context.Context, id primitive.ObjectID, email, otpHash string, expires time.Time) error
	// CompleteEmailChange promotes the pending address to the live one, marks
	// the account verified and clears the OTP pair. Fails with
	// ErrNoPendingChange when no change is outstanding.
	CompleteEmailChange(ctx context.Context, id primitive.ObjectID, newEmail string) error
	// SetPassword replaces the stored hash and clears any outstanding OTP pair.
	SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

// NoteStore persists Note documents scoped to their owner. Every operation
// takes the owner id alongside the note id; a note id alone never grants
// access.
type NoteStore interface {
	Create(ctx context.Context, note Note) (*Note, error)
	// Update applies a merge-patch. Fails with ErrNoChanges when the patch is
	// entirely empty.
	Update(ctx context.Context, ownerID, noteID primitive.ObjectID, patch NotePatch) (*Note, error)
	SetPinned(ctx context.Context, ownerID, noteID primitive.ObjectID, pinned bool) error
	Delete(ctx context.Context, ownerID, noteID primitive.ObjectID) error
	// ListOwned returns the owner's notes, pinned first, then by creation time.
	ListOwned(ctx context.Context, ownerID primitive.ObjectID) ([]Note, error)
	// Search matches a case-insensitive substring against title, content or
	// any tag. Fails with ErrValidation when the query is empty.
	Search(ctx context.Context, ownerID primitive.ObjectID, query string) ([]Note, error)
}

// TokenManager signs and verifies bearer tokens carrying a user id claim.
type TokenManager interface {
	Issue(userID primitive.ObjectID) (string, error)
	Verify(token string) (primitive.ObjectID, error)
}

// Mailer delivers a message to a single recipient. One attempt, no retries; a
// failure is surfaced to the caller.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
