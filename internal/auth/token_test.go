package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baladia/fuel-service/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Issue(model.Principal{
		ID:       42,
		Username: "fleet_admin",
		FullName: "Fleet Admin",
		ReadOnly: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := manager.Parse(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, principal.ID)
	require.Equal(t, "fleet_admin", principal.Username)
	require.Equal(t, "Fleet Admin", principal.FullName)
	require.True(t, principal.ReadOnly)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue(model.Principal{ID: 1, Username: "u"})
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, err := manager.Issue(model.Principal{ID: 1, Username: "u"})
	require.NoError(t, err)

	_, err = manager.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret", time.Hour).Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
