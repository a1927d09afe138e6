package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Secret returns the bcrypt hash of a password or OTP code.
func Secret(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(b), nil
}

// Matches reports whether plain hashes to hashed.
func Matches(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
