package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cheapParams() *PasswordParams {
	return &PasswordParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Xy7#pQ2!mK9a", cheapParams())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := VerifyPassword("Xy7#pQ2!mK9a", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("xy7#pQ2!mK9a", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("secret", cheapParams())
	require.NoError(t, err)
	b, err := HashPassword("secret", cheapParams())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("secret", "$2a$10$bcrypt")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = VerifyPassword("secret", "$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5")
	assert.ErrorIs(t, err, ErrIncompatibleVersion)

	_, err = VerifyPassword("secret", "$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5")
	assert.ErrorIs(t, err, ErrInvalidHash)
}
