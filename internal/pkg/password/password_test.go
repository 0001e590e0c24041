//go:build unit

package password_test

import (
	"testing"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.False(t, password.NeedsRehash(hash))

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.True(t, errs.Is(password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed))
	assert.True(t, errs.Is(password.ComparePassword("", "password123"), password.ErrInvalidPassword))

	_, err = password.HashPassword("")
	assert.True(t, errs.Is(err, password.ErrInvalidPassword))
}

func TestNeedsRehash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, password.NeedsRehash(string(weak)))
	assert.True(t, password.NeedsRehash("not-a-hash"))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	err := password.ComparePassword("not-a-hash", "password123")
	require.Error(t, err)
	assert.False(t, errs.Is(err, password.ErrComparisonFailed))
}
