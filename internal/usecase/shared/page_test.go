//go:build unit

package shared_test

import (
	"math"
	"testing"

	"hotel-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantNumber int
		wantPer    int
		wantOffset int32
	}{
		{name: "既定値", page: 0, perPage: 0, wantNumber: 1, wantPer: 10, wantOffset: 0},
		{name: "2ページ目", page: 2, perPage: 5, wantNumber: 2, wantPer: 5, wantOffset: 5},
		{name: "上限で丸める", page: 3, perPage: 500, wantNumber: 3, wantPer: 100, wantOffset: 200},
		{name: "負のページは1", page: -4, perPage: 10, wantNumber: 1, wantPer: 10, wantOffset: 0},
		{name: "巨大なページはint32に収める", page: math.MaxInt, perPage: 10, wantNumber: math.MaxInt32/10 + 1, wantPer: 10, wantOffset: math.MaxInt32 / 10 * 10},
		{name: "巨大なページで2件ずつ", page: math.MaxInt, perPage: 2, wantNumber: math.MaxInt32/2 + 1, wantPer: 2, wantOffset: math.MaxInt32 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := shared.NormalizePage(tt.page, tt.perPage, 10, 100)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantPer, p.PerPage)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.GreaterOrEqual(t, p.Offset(), int32(0))
		})
	}
}
