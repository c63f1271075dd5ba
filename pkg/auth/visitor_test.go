package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorTokens_RoundTrip(t *testing.T) {
	tokens := NewVisitorTokens("test-secret", "bfd-backend")
	visitorID := NewVisitorID()

	signed, err := tokens.Issue(visitorID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, visitorID, parsed)
}

func TestVisitorTokens_RejectsWrongSecret(t *testing.T) {
	issuing := NewVisitorTokens("secret-a", "bfd-backend")
	verifying := NewVisitorTokens("secret-b", "bfd-backend")

	signed, err := issuing.Issue(NewVisitorID())
	require.NoError(t, err)

	_, err = verifying.Parse(signed)
	assert.Error(t, err)
}

func TestVisitorTokens_RejectsWrongIssuer(t *testing.T) {
	issuing := NewVisitorTokens("test-secret", "someone-else")
	verifying := NewVisitorTokens("test-secret", "bfd-backend")

	signed, err := issuing.Issue(NewVisitorID())
	require.NoError(t, err)

	_, err = verifying.Parse(signed)
	assert.Error(t, err)
}

func TestVisitorTokens_RejectsGarbage(t *testing.T) {
	tokens := NewVisitorTokens("test-secret", "bfd-backend")

	_, err := tokens.Parse("not-a-token")
	assert.Error(t, err)

	_, err = tokens.Parse("")
	assert.Error(t, err)
}

func TestVisitorTokens_RejectsMissingSubject(t *testing.T) {
	tokens := NewVisitorTokens("test-secret", "bfd-backend")

	claims := jwt.RegisteredClaims{Issuer: "bfd-backend"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.Error(t, err)
}

func TestVisitorTokens_EmptySecretFallsBackForDev(t *testing.T) {
	tokens := NewVisitorTokens("", "bfd-backend")

	signed, err := tokens.Issue(NewVisitorID())
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.NoError(t, err)
}

func TestNewVisitorID_IsUUID(t *testing.T) {
	id := NewVisitorID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewVisitorID())
}
