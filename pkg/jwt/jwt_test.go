package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("s3cret", "ingestion", ScopeAdmin, time.Hour)
	require.NoError(t, err)

	subject, err := ParseToken("s3cret", token, ScopeAdmin)
	require.NoError(t, err)
	assert.Equal(t, "ingestion", subject)
}

func TestGenerateWithoutExpiry(t *testing.T) {
	token, err := GenerateToken("s3cret", "ingestion", ScopeAdmin, 0)
	require.NoError(t, err)
	_, err = ParseToken("s3cret", token, ScopeAdmin)
	assert.NoError(t, err)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := GenerateToken("", "ingestion", ScopeAdmin, time.Hour)
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	valid, err := GenerateToken("s3cret", "ingestion", ScopeAdmin, time.Hour)
	require.NoError(t, err)
	wrongScope, err := GenerateToken("s3cret", "ingestion", "read", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", valid, ScopeAdmin)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseToken("s3cret", wrongScope, ScopeAdmin)
	assert.True(t, errors.Is(err, ErrMissingScope))

	_, err = ParseToken("s3cret", "not-a-token", ScopeAdmin)
	assert.Error(t, err)

	past := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ingestion", "scope": ScopeAdmin, "exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := past.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = ParseToken("s3cret", signed, ScopeAdmin)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
