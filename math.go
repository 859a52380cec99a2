package geodesic

import "math"

// degree is the conversion factor from degrees to radians.
const degree = math.Pi / 180

// polyval evaluates the degree-n polynomial with coefficients p[s:s+n+1] at x
// by Horner's method.
func polyval(n int, p []float64, s int, x float64) float64 {
	var y float64
	if n >= 0 {
		y = p[s]
	}
	for ; n > 0; n-- {
		s++
		y = y*x + p[s]
	}
	return y
}

// sumx computes u+v exactly: s = round(u+v) and t the remaining error, so
// that u+v = s+t.
func sumx(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// angNormalize reduces an angle to (-180,180].
func angNormalize(x float64) float64 {
	y := math.Remainder(x, 360)
	if y == -180 {
		return 180
	}
	return y
}

// angDiff computes y-x reduced to [-180,180] along with the roundoff error,
// keeping the result accurate even when x and y are nearly opposite.
func angDiff(x, y float64) (d, e float64) {
	d, t := sumx(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		return sumx(-180, t)
	}
	return sumx(d, t)
}

// angRound rounds an angle so that tiny values (below 1/2^57 deg or so)
// underflow to zero, avoiding near-singular cases for inputs like 1e-200.
func angRound(x float64) float64 {
	const z = 1 / 16.0
	y := math.Abs(x)
	// The compiler mustn't "simplify" z - (z - y) to y.
	if y < z {
		y = z - (z - y)
	}
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -y
	default:
		return y
	}
}

// latFix replaces latitudes outside [-90,90] by NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}

// sincosd computes the sine and cosine of x in degrees, with exact results
// at the quadrant boundaries.
func sincosd(x float64) (sinx, cosx float64) {
	r := math.NaN()
	if !math.IsInf(x, 0) {
		r = math.Mod(x, 360)
	}
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= float64(90 * q)
	s, c := math.Sincos(r * degree)
	switch q & 3 {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	if x == 0 {
		// Preserve the sign of a signed zero.
		s = x
	}
	return s, c
}

// atan2d computes atan2(y,x) in degrees, choosing the quadrant so that
// results at the axes are exact.
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	ang := math.Atan2(y, x) / degree
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

// norm2 normalizes a two-vector.
func norm2(x, y float64) (float64, float64) {
	h := math.Hypot(x, y)
	return x / h, y / h
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
