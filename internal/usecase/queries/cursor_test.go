//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("正常系: エンコードした値を復元できる", func(t *testing.T) {
		checkIn := time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC)
		id := uuid.New()

		gotDay, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(checkIn, id))
		require.NoError(t, err)
		assert.True(t, checkIn.Equal(gotDay))
		assert.Equal(t, id, gotID)
	})

	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	cases := map[string]string{
		"空文字":      "",
		"base64以外": "***",
		"未知のバージョン": enc("v2:2030-02-01_" + uuid.NewString()),
		"区切りなし":    enc("v1:2030-02-01"),
		"日付不正":     enc("v1:2030-13-01_" + uuid.NewString()),
		"UUID不正":   enc("v1:2030-02-01_xyz"),
	}
	for name, cursor := range cases {
		t.Run("異常系: "+name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		})
	}

	t.Run("ValidateLimit", func(t *testing.T) {
		assert.Equal(t, 10, queries.ValidateLimit(0, 10, 100))
		assert.Equal(t, 100, queries.ValidateLimit(500, 10, 100))
		assert.Equal(t, 7, queries.ValidateLimit(7, 10, 100))
	})
}
