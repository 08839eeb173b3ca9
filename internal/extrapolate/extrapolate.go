// Package extrapolate predicts sequence values that grow quadratically.
package extrapolate

// Quadratic returns f(x) for the quadratic f with f(0)=y0, f(1)=y1 and
// f(2)=y2, using Newton's forward differences:
//
//	f(x) = y0 + x·Δ1 + x(x-1)/2·Δ2
//
// x(x-1) is always even, so the result is exact for integer samples.
func Quadratic(y0, y1, y2, x int) int {
	d1 := y1 - y0
	d2 := y2 - 2*y1 + y0

	return y0 + x*d1 + x*(x-1)/2*d2
}
