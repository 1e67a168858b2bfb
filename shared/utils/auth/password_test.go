package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("catering123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "catering123", hash)

	assert.True(t, CheckPasswordHash("catering123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	first, err := HashPassword("catering123")
	require.NoError(t, err)
	second, err := HashPassword("catering123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
