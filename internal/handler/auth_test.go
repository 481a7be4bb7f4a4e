package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelhart/crewcall/internal/utils"
)

func TestBearerSubject(t *testing.T) {
	const secret = "test-secret"
	access, err := utils.NewAccessToken(secret, 42, "ADMIN", 5)
	require.NoError(t, err)

	uid, ok := bearerSubject("Bearer "+access.Token, secret)
	require.True(t, ok)
	assert.Equal(t, uint64(42), uid)

	_, ok = bearerSubject("Bearer "+access.Token, "other-secret")
	assert.False(t, ok, "wrong secret must not verify")

	_, ok = bearerSubject(access.Token, secret)
	assert.False(t, ok, "missing Bearer prefix")

	_, ok = bearerSubject("Bearer not.a.jwt", secret)
	assert.False(t, ok)

	_, ok = bearerSubject("", secret)
	assert.False(t, ok)
}
