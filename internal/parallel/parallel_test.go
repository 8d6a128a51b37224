package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanesVisitsEveryPlaneOnce(t *testing.T) {
	cfg := Config{Workers: 4, MinPixels: 1}

	seen := make([]int32, 37)
	Planes(len(seen), 16, func(p int) {
		atomic.AddInt32(&seen[p], 1)
	}, cfg)

	for p, n := range seen {
		assert.EqualValues(t, 1, n, "plane %d", p)
	}
}

func TestPlanesInline(t *testing.T) {
	for _, cfg := range []Config{
		{Workers: 1, MinPixels: 1},
		{Workers: 8, MinPixels: 1 << 20},
	} {
		var order []int
		Planes(5, 4, func(p int) { order = append(order, p) }, cfg)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, order, "inline runs in order")
	}
}

func TestPlanesZero(t *testing.T) {
	called := false
	Planes(0, 100, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}
