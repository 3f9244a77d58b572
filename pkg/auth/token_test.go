package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := SignToken("secret", 42)
	require.NoError(t, err)

	uid, err := ParseToken("secret", tok)
	require.NoError(t, err)
	assert.EqualValues(t, 42, uid)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	tok, err := SignToken("secret", 42)
	require.NoError(t, err)

	_, err = ParseToken("other", tok)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.Error(t, err)
}
