//go:build unit

package patch_test

import (
	"testing"

	"hotel-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	name := "Hanako"
	assert.Equal(t, "Hanako", patch.Coalesce(&name, "Taro"))
	assert.Equal(t, "Taro", patch.Coalesce(nil, "Taro"))
}

func TestClearable(t *testing.T) {
	current := "090-0000-0000"
	empty := ""
	next := "080-1111-1111"

	t.Run("nilは現在値を維持", func(t *testing.T) {
		assert.Same(t, &current, patch.Clearable(nil, &current))
	})
	t.Run("空文字は値を消す", func(t *testing.T) {
		assert.Nil(t, patch.Clearable(&empty, &current))
	})
	t.Run("新しい値は入力をコピーする", func(t *testing.T) {
		got := patch.Clearable(&next, &current)
		assert.Equal(t, next, *got)
		assert.NotSame(t, &next, got)
	})
}
