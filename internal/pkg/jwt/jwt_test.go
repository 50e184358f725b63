package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken("admin", []string{"SYSTEM"}, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.Has("SYSTEM"))
	assert.False(t, claims.Has("SETTINGS"))
}

func TestValidateRejectsBadTokens(t *testing.T) {
	token, err := GenerateToken("admin", nil, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateToken("admin", nil, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(expired, "secret")
	assert.Error(t, err)

	_, err = ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
}

func TestNilClaimsHaveNothing(t *testing.T) {
	var c *Claims
	assert.False(t, c.Has("SYSTEM"))
}
