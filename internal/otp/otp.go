package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	potp "github.com/pquerna/otp"
)

// TTL is how long an emailed code stays valid.
const TTL = 10 * time.Minute

const (
	codeMin = 100000
	codeMax = 999999
)

// Generate produces a six-digit verification code and its expiry time. The
// code is uniform over 100000-999999 drawn from the system CSPRNG.
func Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to draw otp code: %w", err)
	}
	code := potp.DigitsSix.Format(int32(n.Int64() + codeMin))
	return code, time.Now().Add(TTL), nil
}
