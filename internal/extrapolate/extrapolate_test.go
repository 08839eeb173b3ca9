package extrapolate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nadlgit/gridsearch/internal/extrapolate"
)

func TestQuadratic(t *testing.T) {
	f := func(x int) int { return 3*x*x - 5*x + 7 }
	for _, x := range []int{0, 1, 2, 3, 10, 202300} {
		assert.Equal(t, f(x), extrapolate.Quadratic(f(0), f(1), f(2), x), "x=%d", x)
	}
}

func TestQuadratic_Degenerate(t *testing.T) {
	// constant and linear sequences are quadratics with zero leading terms
	assert.Equal(t, 4, extrapolate.Quadratic(4, 4, 4, 1000))
	assert.Equal(t, 2004, extrapolate.Quadratic(4, 6, 8, 1000))
}
