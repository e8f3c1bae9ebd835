package auth_test

import (
	"testing"
	"time"

	"panel-rsvp/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMatches(t *testing.T) {
	admin := auth.NewAdmin("topsecret", time.Hour)

	assert.True(t, admin.KeyMatches("topsecret"))
	assert.False(t, admin.KeyMatches("wrong"))
	assert.False(t, admin.KeyMatches(""))
}

func TestKeyMatches_EmptySecretNeverMatches(t *testing.T) {
	admin := auth.NewAdmin("", time.Hour)

	assert.False(t, admin.KeyMatches(""))
	assert.False(t, admin.KeyMatches("anything"))
}

func TestIssueAndValidateToken(t *testing.T) {
	admin := auth.NewAdmin("topsecret", time.Hour)

	token, expiresAt, err := admin.IssueToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	assert.NoError(t, admin.ValidateToken(token))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := auth.NewAdmin("topsecret", time.Hour)
	other := auth.NewAdmin("different", time.Hour)

	token, _, err := issuer.IssueToken()
	require.NoError(t, err)

	assert.ErrorIs(t, other.ValidateToken(token), auth.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	admin := auth.NewAdmin("topsecret", -time.Minute)

	token, _, err := admin.IssueToken()
	require.NoError(t, err)

	assert.ErrorIs(t, admin.ValidateToken(token), auth.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	admin := auth.NewAdmin("topsecret", time.Hour)

	assert.ErrorIs(t, admin.ValidateToken("not.a.token"), auth.ErrInvalidToken)
	assert.ErrorIs(t, admin.ValidateToken(""), auth.ErrInvalidToken)
}
