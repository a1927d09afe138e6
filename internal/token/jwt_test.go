package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gonotes/internal/models"
)

func TestNewJWT_EmptySecret(t *testing.T) {
	_, err := NewJWT("")
	require.Error(t, err)
}

func TestJWT_RoundTrip(t *testing.T) {
	j, err := NewJWT("test-secret")
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	tokenString, err := j.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := j.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1, err := NewJWT("secret-one")
	require.NoError(t, err)
	j2, err := NewJWT("secret-two")
	require.NoError(t, err)

	tokenString, err := j1.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = j2.Verify(tokenString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrTokenInvalid))
}

func TestJWT_Expired(t *testing.T) {
	j := &JWT{secret: []byte("test-secret"), ttl: -time.Minute}

	tokenString, err := j.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = j.Verify(tokenString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrTokenExpired))
}

func TestJWT_Garbage(t *testing.T) {
	j, err := NewJWT("test-secret")
	require.NoError(t, err)

	_, err = j.Verify("not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrTokenInvalid))
}
