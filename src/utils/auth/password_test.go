package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hashed)
	assert.True(t, VerifyPassword("hunter2", hashed))
	assert.False(t, VerifyPassword("hunter3", hashed))
	assert.False(t, VerifyPassword("hunter2", "not-a-bcrypt-hash"))
}

func TestHashPasswordLength(t *testing.T) {
	_, err := HashPassword(strings.Repeat("p", MaxPasswordBytes))
	assert.NoError(t, err)

	_, err = HashPassword(strings.Repeat("p", MaxPasswordBytes+1))
	assert.Error(t, err)
}
