package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverPlaintext(t *testing.T) {
	h, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	require.NotEqual(t, "hunter2secret", h)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same-plaintext")
	require.NoError(t, err)
	h2, err := HashPassword("same-plaintext")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	require.NoError(t, VerifyPassword("same-plaintext", h1))
	require.NoError(t, VerifyPassword("same-plaintext", h2))
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("correct horse")
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("correct horse", h))
	require.Error(t, VerifyPassword("battery staple", h))
	require.Error(t, VerifyPassword("", h))
}
