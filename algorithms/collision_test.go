package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	t.Run("separated on x axis", func(t *testing.T) {
		a := Rect{X1: 0, Y1: 0, X2: 1, Y2: 1}
		b := Rect{X1: 2, Y1: 0, X2: 3, Y2: 1}
		assert.False(t, Overlaps(a, b))
	})

	t.Run("separated on y axis", func(t *testing.T) {
		a := Rect{X1: 0, Y1: 0, X2: 1, Y2: 1}
		b := Rect{X1: 0, Y1: 5, X2: 1, Y2: 6}
		assert.False(t, Overlaps(a, b))
	})

	t.Run("strict interior overlap", func(t *testing.T) {
		a := Rect{X1: 0, Y1: 0, X2: 2, Y2: 2}
		b := Rect{X1: 1, Y1: 1, X2: 3, Y2: 3}
		assert.True(t, Overlaps(a, b))
	})

	t.Run("edge touching does not collide", func(t *testing.T) {
		a := Rect{X1: 0, Y1: 0, X2: 1, Y2: 1}
		b := Rect{X1: 1, Y1: 0, X2: 2, Y2: 1}
		assert.False(t, Overlaps(a, b))

		// 꼭짓점만 닿는 경우
		c := Rect{X1: 1, Y1: 1, X2: 2, Y2: 2}
		assert.False(t, Overlaps(a, c))
	})

	t.Run("containment counts as overlap", func(t *testing.T) {
		outer := Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}
		inner := Rect{X1: 4, Y1: 4, X2: 5, Y2: 5}
		assert.True(t, Overlaps(outer, inner))
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := []struct {
			a, b Rect
		}{
			{Rect{0, 0, 1, 1}, Rect{2, 0, 3, 1}},
			{Rect{0, 0, 2, 2}, Rect{1, 1, 3, 3}},
			{Rect{0, 0, 1, 1}, Rect{1, 0, 2, 1}},
			{Rect{0, 0, 10, 10}, Rect{4, 4, 5, 5}},
		}
		for _, p := range pairs {
			assert.Equal(t, Overlaps(p.a, p.b), Overlaps(p.b, p.a))
		}
	})
}

func TestOverlapsAny(t *testing.T) {
	existing := []Rect{
		{X1: 0, Y1: 0, X2: 1, Y2: 1},
		{X1: 5, Y1: 5, X2: 6, Y2: 6},
	}

	assert.True(t, OverlapsAny(Rect{X1: 0.5, Y1: 0.5, X2: 1.5, Y2: 1.5}, existing))
	assert.False(t, OverlapsAny(Rect{X1: 2, Y1: 2, X2: 3, Y2: 3}, existing))
	assert.False(t, OverlapsAny(Rect{X1: 0.5, Y1: 0.5, X2: 1.5, Y2: 1.5}, nil))
}
