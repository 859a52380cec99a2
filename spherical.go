// Spherical fast paths for ellipsoids initialized with NewSpherical.
//
// The formulas follow the latitude/longitude spherical geodesy tools
// (c) Chris Veness 2002-2019, MIT Licence,
// www.movable-type.co.uk/scripts/latlong.html
// www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical

package geodesic

import "math"

func sphericalInverse(
	radius float64,
	lat1 float64, lon1 float64,
	lat2 float64, lon2 float64,
	s12 *float64, azi1 *float64, azi2 *float64,
) {
	if s12 != nil {
		*s12 = haversineDistance(radius, lat1, lon1, lat2, lon2)
	}
	if azi1 != nil {
		*azi1 = initialBearing(lat1, lon1, lat2, lon2)
	}
	if azi2 != nil {
		*azi2 = wrap180(initialBearing(lat2, lon2, lat1, lon1) + 180)
	}
}

func sphericalDirect(
	radius float64,
	lat1 float64, lon1 float64, azi1 float64,
	s12 float64,
	lat2 *float64, lon2 *float64, azi2 *float64,
) {
	la2, lo2 := destination(radius, lat1, lon1, s12, azi1)
	if lat2 != nil {
		*lat2 = la2
	}
	if lon2 != nil {
		*lon2 = lo2
	}
	if azi2 != nil {
		*azi2 = wrap180(initialBearing(la2, lo2, lat1, lon1) + 180)
	}
}

// destination computes the point reached by travelling the given distance
// on the given bearing over a sphere.
func destination(radius float64, lat1, lon1, meters, bearing float64) (lat2, lon2 float64) {
	// sin(phi2) = sin(phi1)*cos(d) + cos(phi1)*sin(d)*cos(theta)
	// tan(dlam) = sin(theta)*sin(d)*cos(phi1) / (cos(d)-sin(phi1)*sin(phi2))
	// see mathforum.org/library/drmath/view/52049.html for derivation
	d := meters / radius
	theta := bearing * degree
	phi1 := lat1 * degree
	lam1 := lon1 * degree
	phi2 := math.Asin(math.Sin(phi1)*math.Cos(d) +
		math.Cos(phi1)*math.Sin(d)*math.Cos(theta))
	lam2 := lam1 + math.Atan2(math.Sin(theta)*math.Sin(d)*math.Cos(phi1),
		math.Cos(d)-math.Sin(phi1)*math.Sin(phi2))
	// normalise to -180..+180
	lam2 = math.Mod(lam2+3*math.Pi, 2*math.Pi) - math.Pi
	return phi2 / degree, lam2 / degree
}

// haversineDistance computes the great-circle distance between two points
// on a sphere using the haversine formula.
func haversineDistance(radius float64, lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * degree
	phi2 := lat2 * degree
	dphi := (lat2 - lat1) * degree
	dlam := (lon2 - lon1) * degree
	sdphi2 := math.Sin(dphi / 2)
	sdlam2 := math.Sin(dlam / 2)
	haver := sdphi2*sdphi2 + math.Cos(phi1)*math.Cos(phi2)*sdlam2*sdlam2
	return radius * 2 * math.Asin(math.Sqrt(haver))
}

// initialBearing computes the bearing at the first point of the great
// circle through both points.
func initialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tan(theta) = sin(dlam)*cos(phi2) /
	//              (cos(phi1)*sin(phi2) - sin(phi1)*cos(phi2)*cos(dlam))
	// see mathforum.org/library/drmath/view/55417.html for derivation
	phi1 := lat1 * degree
	phi2 := lat2 * degree
	dlam := (lon2 - lon1) * degree
	y := math.Sin(dlam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlam)
	theta := math.Atan2(y, x)
	return wrap180(theta / degree)
}

func wrap180(degs float64) float64 {
	if degs < -180 || degs > 180 {
		degs = math.Mod(degs, 360)
		if degs < -180 {
			degs += 360
		} else if degs > 180 {
			degs -= 360
		}
	}
	return degs
}
