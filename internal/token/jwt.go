package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gonotes/internal/models"
)

// Claims carries the minimal identity claim: the user id only. Handlers that
// need current account state re-fetch the user from the store instead of
// trusting a snapshot baked into the token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TTL matches the original deployment's 36000-minute token lifetime.
const TTL = 36000 * time.Minute

// JWT implements models.TokenManager backed by symmetric HMAC.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

// NewJWT creates a token manager with the provided signing secret. An empty
// secret is a configuration error.
func NewJWT(secret string) (*JWT, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is not configured")
	}
	return &JWT{secret: []byte(secret), ttl: TTL}, nil
}

// Issue signs a bearer token for the given user id.
func (j *JWT) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID.Hex(),
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a bearer token and extracts the user id.
func (j *JWT) Verify(tokenString string) (primitive.ObjectID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, models.ErrTokenExpired
		}
		return primitive.NilObjectID, fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return primitive.NilObjectID, models.ErrTokenInvalid
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: bad user id claim", models.ErrTokenInvalid)
	}
	return id, nil
}

var _ models.TokenManager = (*JWT)(nil)
