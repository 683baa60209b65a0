package fractal

import (
	"math"
	"math/cmplx"
)

// Result is the outcome of iterating one seed. When Escaped is false the
// point is bounded and N equals the iteration budget.
type Result struct {
	N       int
	Z       complex128
	Escaped bool
}

// Evaluate iterates z = z^2 + c from seed and reports the first step n at
// which |z_n|^2 exceeds the squared escape radius.
//
// In Mandelbrot mode c = seed and z_0 = c (the orbit of 0 advanced by one
// step); in Julia mode z_0 = seed and c = p.C. Both run the same loop.
// Overflowed or NaN magnitudes count as escaped.
//
// Starting at z_0 = c shifts Mandelbrot counts down by one: a point whose
// orbit of 0 first exceeds the threshold at step MaxIter is reported as
// escaped with N = MaxIter-1, where iterating from 0 would classify it as
// bounded.
func Evaluate(seed complex128, p Params) Result {
	zr, zi := real(seed), imag(seed)
	cr, ci := zr, zi
	if p.Mode == Julia {
		cr, ci = real(p.C), imag(p.C)
	} else if p.SkipInterior && (inMainCardioid(zr, zi) || inPeriod2Bulb(zr, zi)) {
		return Result{N: p.MaxIter}
	}

	threshold := p.Threshold()
	for n := 0; n < p.MaxIter; n++ {
		zr2, zi2 := zr*zr, zi*zi
		if !(zr2+zi2 <= threshold) {
			return Result{N: n, Z: complex(zr, zi), Escaped: true}
		}
		zr, zi = zr2-zi2+cr, 2*zr*zi+ci
	}
	return Result{N: p.MaxIter}
}

func inMainCardioid(x, y float64) bool {
	q := sumOfSquares(x-0.25, y)
	return q*(q+x-0.25) <= y*y/4
}

func inPeriod2Bulb(x, y float64) bool {
	return sumOfSquares(x+1, y) <= 0.0625
}

func sumOfSquares(a, b float64) float64 {
	return a*a + b*b
}

// Smooth returns the continuous iteration estimate
// n + 1 - log(log|z_n| / log R) / log 2 for an escaped result, clamped to be
// non-negative. Bounded results, radii <= 1 and non-finite estimates fall
// back to N.
func (r Result) Smooth(escapeRadius float64) float64 {
	if !r.Escaped {
		return float64(r.N)
	}
	logR := math.Log(escapeRadius)
	if !(logR > 0) {
		return float64(r.N)
	}
	mu := float64(r.N) + 1 - math.Log(math.Log(cmplx.Abs(r.Z))/logR)/math.Ln2
	if !finite(mu) {
		return float64(r.N)
	}
	return math.Max(mu, 0)
}
