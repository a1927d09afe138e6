package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_RoundTrip(t *testing.T) {
	h, err := Secret("p1")
	require.NoError(t, err)
	require.NotEqual(t, "p1", h)

	assert.True(t, Matches(h, "p1"))
	assert.False(t, Matches(h, "p2"))
}

func TestSecret_Salted(t *testing.T) {
	h1, err := Secret("same")
	require.NoError(t, err)
	h2, err := Secret("same")
	require.NoError(t, err)

	// Two hashes of the same input differ, both still match.
	assert.NotEqual(t, h1, h2)
	assert.True(t, Matches(h1, "same"))
	assert.True(t, Matches(h2, "same"))
}

func TestMatches_GarbageHash(t *testing.T) {
	assert.False(t, Matches("not a bcrypt hash", "p1"))
}
