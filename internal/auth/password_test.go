package auth_test

import (
	"testing"

	"github.com/foodyhq/backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("secret password")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("secret password", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	h1, err := hasher.Hash("same input")
	require.NoError(t, err)
	h2, err := hasher.Hash("same input")
	require.NoError(t, err)

	// Salted hashing is non-deterministic across calls for the same input.
	assert.NotEqual(t, h1, h2)
	assert.True(t, hasher.Verify("same input", h1))
	assert.True(t, hasher.Verify("same input", h2))
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	for _, malformed := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=1,p=4$only-four-parts",
		"$argon2id$v=19$bogus$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!",
	} {
		assert.False(t, hasher.Verify("anything", malformed), "hash %q", malformed)
	}
}
