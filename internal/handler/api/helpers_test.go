//go:build unit

package api_test

import (
	"testing"

	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeAuth stands in for the auth middleware: any Authorization header authenticates as identity.
func fakeAuth(identity *shared.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("identity", identity)
		}
		c.Next()
	}
}

func newIdentity(t *testing.T, email string) *shared.Identity {
	t.Helper()
	identity, err := shared.NewIdentity(uuid.New(), email, "Test User")
	require.NoError(t, err)
	return identity
}
