package geodesic

import "math"

// geodGeodesicLine carries the state for a geodesic line: the starting
// point and azimuth together with the series coefficients for this line's
// Clairaut constant, so that repeated position queries cost O(1) series
// evaluations. Which coefficient blocks are filled is governed by caps.
type geodGeodesicLine struct {
	lat1, lon1, azi1       float64
	a, f, b, c2, f1        float64
	salp0, calp0, k2       float64
	salp1, calp1           float64
	ssig1, csig1           float64
	dn1                    float64
	stau1, ctau1           float64
	somg1, comg1           float64
	aa1m1, aa2m1           float64 // A1-1, A2-1
	aa3c, aa4              float64
	bb11, bb21, bb31, bb41 float64
	a13, s13               float64

	c1a  [nC1 + 1]float64
	c1pa [nC1p + 1]float64
	c2a  [nC2 + 1]float64
	c3a  [nC3]float64
	c4a  [nC4]float64

	caps Mask
}

// geodLineInitInt initializes l with the azimuth already resolved into its
// sine and cosine.
func geodLineInitInt(l *geodGeodesicLine, g *geodGeodesic,
	lat1, lon1, azi1, salp1, calp1 float64, caps Mask) {

	l.a = g.a
	l.f = g.f
	l.b = g.b
	l.c2 = g.c2
	l.f1 = g.f1
	// Always allow latitude and azimuth and unrolling the longitude.
	l.caps = caps | Latitude | Azimuth | longUnrollMask

	l.lat1 = latFix(lat1)
	l.lon1 = lon1
	l.azi1 = azi1
	l.salp1 = salp1
	l.calp1 = calp1

	sbet1, cbet1 := sincosd(angRound(l.lat1))
	sbet1 *= l.f1
	// Ensure cbet1 = +epsilon at poles.
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + g.ep2*sbet1*sbet1)

	// Evaluate alp0 from sin(alp1)*cos(bet1) = sin(alp0).
	l.salp0 = l.salp1 * cbet1 // alp0 in [0, pi/2 - |bet1|]
	// Alt: calp0 = hypot(sbet1, calp1*cbet1). The following is slightly
	// better (consider the case salp1 = 0).
	l.calp0 = math.Hypot(l.calp1, l.salp1*sbet1)
	// Evaluate sig with tan(bet1) = tan(sig1)*cos(alp1).
	// sig = 0 is nearest northward crossing of equator.
	// With bet1 = 0, alp1 = pi/2, we have sig1 = 0 (equatorial line).
	// With alp1 = pi/2, omg1 = lam1 (equatorial line).
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || l.calp1 != 0 {
		l.csig1 = cbet1 * l.calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	// sig1 in (-pi, pi]; omg1 is unnormalized.
	l.ssig1, l.csig1 = norm2(l.ssig1, l.csig1)

	l.k2 = l.calp0 * l.calp0 * g.ep2
	eps := l.k2 / (2*(1+math.Sqrt(1+l.k2)) + l.k2)

	if l.caps&capC1 != 0 {
		l.aa1m1 = a1m1f(eps)
		c1f(eps, l.c1a[:])
		l.bb11 = sinCosSeries(true, l.ssig1, l.csig1, l.c1a[:])
		s, c := math.Sincos(l.bb11)
		// tau1 = sig1 + B11
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
		// Not necessary because c1pa reverts c1a:
		// B11 = -SinCosSeries(true, stau1, ctau1, c1pa)
	}
	if l.caps&capC1p != 0 {
		c1pf(eps, l.c1pa[:])
	}
	if l.caps&capC2 != 0 {
		l.aa2m1 = a2m1f(eps)
		c2f(eps, l.c2a[:])
		l.bb21 = sinCosSeries(true, l.ssig1, l.csig1, l.c2a[:])
	}
	if l.caps&capC3 != 0 {
		c3f(g, eps, l.c3a[:])
		l.aa3c = -l.f * l.salp0 * a3f(g, eps)
		l.bb31 = sinCosSeries(true, l.ssig1, l.csig1, l.c3a[:])
	}
	if l.caps&capC4 != 0 {
		c4f(g, eps, l.c4a[:])
		// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0)
		l.aa4 = l.a * l.a * l.calp0 * l.salp0 * g.e2
		l.bb41 = sinCosSeries(false, l.ssig1, l.csig1, l.c4a[:])
	}

	l.a13 = math.NaN()
	l.s13 = math.NaN()
}

// geodLineInit initializes l for the geodesic through (lat1,lon1) with
// azimuth azi1 and the given capabilities.
func geodLineInit(l *geodGeodesicLine, g *geodGeodesic,
	lat1, lon1, azi1 float64, caps Mask) {
	azi1 = angNormalize(azi1)
	// Guard against underflow in salp0.
	salp1, calp1 := sincosd(angRound(azi1))
	geodLineInitInt(l, g, lat1, lon1, azi1, salp1, calp1, caps)
}

// geodGenPosition computes the position a distance s12A12 (or, with the
// ArcMode flag, an arc length in degrees) along the line, writing results
// only through non-nil pointers and returning the arc length a12.
func geodGenPosition(l *geodGeodesicLine, flags Flags, s12A12 float64,
	plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12 *float64) float64 {

	var lat2, lon2, azi2, s12, m12, gs12, gs21, ss12 float64

	var outmask Mask
	if plat2 != nil {
		outmask |= Latitude
	}
	if plon2 != nil {
		outmask |= Longitude
	}
	if pazi2 != nil {
		outmask |= Azimuth
	}
	if ps12 != nil {
		outmask |= Distance
	}
	if pm12 != nil {
		outmask |= ReducedLength
	}
	if pM12 != nil || pM21 != nil {
		outmask |= GeodesicScale
	}
	if pS12 != nil {
		outmask |= Area
	}
	outmask &= l.caps & outMask

	if flags&ArcMode == 0 && l.caps&DistanceIn&outMask == 0 {
		// Impossible distance calculation requested.
		return math.NaN()
	}

	var sig12, ssig12, csig12, b12, ab1 float64
	if flags&ArcMode != 0 {
		sig12 = s12A12 * degree
		ssig12, csig12 = sincosd(s12A12)
	} else {
		// Interpret s12A12 as a distance.
		tau12 := s12A12 / (l.b * (1 + l.aa1m1))
		s, c := math.Sincos(tau12)
		// tau2 = tau1 + tau12
		b12 = -sinCosSeries(true,
			l.stau1*c+l.ctau1*s, l.ctau1*c-l.stau1*s, l.c1pa[:])
		sig12 = tau12 - (b12 - l.bb11)
		ssig12 = math.Sin(sig12)
		csig12 = math.Cos(sig12)
		if math.Abs(l.f) > 0.01 {
			// The reverted series is inaccurate for |f| > 1/50; correct
			// sig12 with one Newton iteration. The following table shows
			// the approximate maximum error for a = WGS_a() and various f
			// relative to GeodesicExact:
			//     erri = the error in the inverse solution (nm)
			//     errd = the error in the direct solution (series only, nm)
			//     errda = the error in the direct solution (series+1 Newton) (nm)
			//       f     erri  errd errda
			//     -1/5    12e6 1.2e9  69e6
			//     -1/10  123e3  12e6 765e3
			//     -1/20   1110 108e3  7155
			//     -1/50  18.63 200.9 27.12
			//     -1/100 18.63 23.78 23.37
			//     1/100  22.35 23.37 23.37
			//     1/50   19.8  21.39 23.11
			//     1/20   5376 146e3  10e3
			//     1/10  829e3  22e6 1.5e6
			//     1/5    157e6 3.8e9 280e6
			ssig2 := l.ssig1*csig12 + l.csig1*ssig12
			csig2 := l.csig1*csig12 - l.ssig1*ssig12
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
			serr := (1+l.aa1m1)*(sig12+(b12-l.bb11)) - s12A12/l.b
			sig12 -= serr / math.Sqrt(1+l.k2*ssig2*ssig2)
			ssig12 = math.Sin(sig12)
			csig12 = math.Cos(sig12)
			// Update B12 below.
		}
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*ssig2*ssig2)
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		if flags&ArcMode != 0 || math.Abs(l.f) > 0.01 {
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
		}
		ab1 = (1 + l.aa1m1) * (b12 - l.bb11)
	}
	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	// Alt: cbet2 = hypot(csig2, salp0*ssig2)
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// Meridional geodesic crossing a pole.
		cbet2 = tiny
		csig2 = tiny
	}
	// tan(alp0) = cos(sig2)*tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2 // No need to normalize

	if outmask&Distance != 0 {
		if flags&ArcMode != 0 {
			s12 = l.b * ((1+l.aa1m1)*sig12 + ab1)
		} else {
			s12 = s12A12
		}
	}
	if outmask&Longitude != 0 {
		// tan(omg2) = sin(alp0) * tan(sig2)
		somg2 := l.salp0 * ssig2
		comg2 := csig2 // No need to normalize
		e := math.Copysign(1, l.salp0) // East-going?
		var omg12 float64
		if flags&LongUnroll != 0 {
			// omg12 = omg2 - omg1
			omg12 = e * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(e*somg2, comg2) - math.Atan2(e*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1,
				comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.aa3c*(sig12+
			(sinCosSeries(true, ssig2, csig2, l.c3a[:])-l.bb31))
		lon12 := lam12 / degree
		if flags&LongUnroll != 0 {
			lon2 = l.lon1 + lon12
		} else {
			lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
		}
	}
	if outmask&Latitude != 0 {
		lat2 = atan2d(sbet2, l.f1*cbet2)
	}
	if outmask&Azimuth != 0 {
		azi2 = atan2d(salp2, calp2)
	}
	if outmask&(ReducedLength|GeodesicScale) != 0 {
		b22 := sinCosSeries(true, ssig2, csig2, l.c2a[:])
		ab2 := (1 + l.aa2m1) * (b22 - l.bb21)
		j12 := (l.aa1m1-l.aa2m1)*sig12 + (ab1 - ab2)
		if outmask&ReducedLength != 0 {
			// Add parens around (csig1*ssig2) and (ssig1*csig2) to ensure
			// accurate cancellation for coincident points.
			m12 = l.b * ((dn2*(l.csig1*ssig2) - l.dn1*(l.ssig1*csig2)) -
				l.csig1*csig2*j12)
		}
		if outmask&GeodesicScale != 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) /
				(l.dn1 + dn2)
			gs12 = csig12 + (t*ssig2-csig2*j12)*l.ssig1/l.dn1
			gs21 = csig12 - (t*l.ssig1-l.csig1*j12)*ssig2/dn2
		}
	}
	if outmask&Area != 0 {
		b42 := sinCosSeries(false, ssig2, csig2, l.c4a[:])
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize.
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// tan(alp) = tan(alp0) * sec(sig)
			// tan(alp2-alp1) = (tan(alp2)-tan(alp1)) / (tan(alp2)*tan(alp1)+1)
			// = calp0 * salp0 * (csig1-csig2) / (salp0^2 + calp0^2 * csig1*csig2)
			// If csig12 > 0, write csig1 - csig2 = ssig12 * (csig1 * ssig12 /
			// (1 + csig12) + ssig1) to ensure accuracy for small sig12.
			var t float64
			if csig12 <= 0 {
				t = l.csig1*(1-csig12) + ssig12*l.ssig1
			} else {
				t = ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			salp12 = l.calp0 * l.salp0 * t
			calp12 = l.salp0*l.salp0 + l.calp0*l.calp0*l.csig1*csig2
		}
		ss12 = l.c2*math.Atan2(salp12, calp12) + l.aa4*(b42-l.bb41)
	}

	if plat2 != nil && outmask&Latitude != 0 {
		*plat2 = lat2
	}
	if plon2 != nil && outmask&Longitude != 0 {
		*plon2 = lon2
	}
	if pazi2 != nil && outmask&Azimuth != 0 {
		*pazi2 = azi2
	}
	if ps12 != nil && outmask&Distance != 0 {
		*ps12 = s12
	}
	if pm12 != nil && outmask&ReducedLength != 0 {
		*pm12 = m12
	}
	if outmask&GeodesicScale != 0 {
		if pM12 != nil {
			*pM12 = gs12
		}
		if pM21 != nil {
			*pM21 = gs21
		}
	}
	if pS12 != nil && outmask&Area != 0 {
		*pS12 = ss12
	}

	if flags&ArcMode != 0 {
		return s12A12
	}
	return sig12 / degree
}

// geodPosition computes the position a distance s12 along the line.
func geodPosition(l *geodGeodesicLine, s12 float64,
	plat2, plon2, pazi2 *float64) {
	geodGenPosition(l, NoFlags, s12, plat2, plon2, pazi2,
		nil, nil, nil, nil, nil)
}

// geodSetDistance pins the line's reference point 3 at distance s13 from
// point 1.
func geodSetDistance(l *geodGeodesicLine, s13 float64) {
	l.s13 = s13
	// This will set a13 to NaN if the line does not have the DistanceIn
	// capability.
	l.a13 = geodGenPosition(l, NoFlags, l.s13,
		nil, nil, nil, nil, nil, nil, nil, nil)
}

// geodSetArc pins the line's reference point 3 at arc length a13 (degrees)
// from point 1.
func geodSetArc(l *geodGeodesicLine, a13 float64) {
	l.a13 = a13
	// s13 remains NaN if the line does not have the Distance capability.
	l.s13 = math.NaN()
	geodGenPosition(l, ArcMode, l.a13,
		nil, nil, nil, &l.s13, nil, nil, nil, nil)
}

// geodGenSetDistance pins reference point 3 in terms of either distance or
// arc length according to the ArcMode flag.
func geodGenSetDistance(l *geodGeodesicLine, flags Flags, s13A13 float64) {
	if flags&ArcMode != 0 {
		geodSetArc(l, s13A13)
	} else {
		geodSetDistance(l, s13A13)
	}
}

// Line is a geodesic line bound to a starting point and azimuth on a
// particular ellipsoid. Construction precomputes the series coefficients
// for the line's Clairaut constant once, making repeated position queries
// along the same line cheap. Position queries never mutate the line; only
// SetDistance and GenSetDistance do, and then only the reference third
// point. A Line may be copied freely and used from multiple goroutines as
// long as each copy is confined to one goroutine at a time.
type Line struct {
	l geodGeodesicLine
}

// LineInit initializes a geodesic line starting at (lat1,lon1) with azimuth
// azi1 (degrees), able to compute the quantities selected by caps. The
// latitude and azimuth of the target point are always computable; include
// DistanceIn in caps to query positions by distance rather than arc length.
//
// lat1 should be in the range [-90,+90].
func (e *Ellipsoid) LineInit(lat1, lon1, azi1 float64, caps Mask) *Line {
	line := &Line{}
	geodLineInit(&line.l, &e.g, lat1, lon1, azi1, caps)
	return line
}

// DirectLine initializes a geodesic line as LineInit does and additionally
// pins the line's reference point 3 at distance s12 from point 1, as if by
// solving the direct problem at construction time.
func (e *Ellipsoid) DirectLine(lat1, lon1, azi1, s12 float64, caps Mask) *Line {
	return e.GenDirectLine(lat1, lon1, azi1, NoFlags, s12, caps)
}

// GenDirectLine is the general form of DirectLine: with the ArcMode flag
// s12A12 is an arc length in degrees, otherwise a distance in meters (and
// the DistanceIn capability is added implicitly).
func (e *Ellipsoid) GenDirectLine(lat1, lon1, azi1 float64, flags Flags,
	s12A12 float64, caps Mask) *Line {
	line := &Line{}
	azi1 = angNormalize(azi1)
	// Automatically supply DistanceIn if distance is sought.
	if flags&ArcMode == 0 {
		caps |= DistanceIn
	}
	salp1, calp1 := sincosd(angRound(azi1))
	geodLineInitInt(&line.l, &e.g, lat1, lon1, azi1, salp1, calp1, caps)
	geodGenSetDistance(&line.l, flags, s12A12)
	return line
}

// InverseLine initializes a geodesic line running from (lat1,lon1) toward
// (lat2,lon2), pinning the line's reference point 3 at point 2. The line's
// azimuth is the solution of the inverse problem between the two points.
func (e *Ellipsoid) InverseLine(lat1, lon1, lat2, lon2 float64, caps Mask) *Line {
	line := &Line{}
	a12, _, salp1, calp1, _, _, _, _, _, _ :=
		geodGenInverseInt(&e.g, lat1, lon1, lat2, lon2, 0)
	azi1 := atan2d(salp1, calp1)
	// Ensure that a12 can be converted to a distance.
	if caps&(outMask&DistanceIn) != 0 {
		caps |= Distance
	}
	geodLineInitInt(&line.l, &e.g, lat1, lon1, azi1, salp1, calp1, caps)
	geodSetArc(&line.l, a12)
	return line
}

// Position computes the point a distance s12 (meters) along the line.
// Requires the line to have the DistanceIn capability (and Longitude for
// plon2 to be set). Out params may be nil. Read-only.
func (l *Line) Position(s12 float64, plat2, plon2, pazi2 *float64) {
	geodPosition(&l.l, s12, plat2, plon2, pazi2)
}

// GenPosition is the general position query, mirroring GeneralDirect's
// output shape while reusing the line's precomputed series. With the
// ArcMode flag s12A12 is an arc length in degrees; otherwise it is a
// distance in meters, which requires the DistanceIn capability (NaN is
// returned if it is missing). Out params for quantities outside the line's
// capabilities are left unwritten. Returns the arc length a12 (degrees).
// Read-only.
func (l *Line) GenPosition(flags Flags, s12A12 float64,
	plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12 *float64) float64 {
	return geodGenPosition(&l.l, flags, s12A12,
		plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12)
}

// SetDistance pins the line's reference point 3 at distance s13 (meters)
// from point 1. This is the only mutation a Line supports; it exists so
// that bisection-style algorithms can move a reference point without
// rebuilding the line.
func (l *Line) SetDistance(s13 float64) {
	geodSetDistance(&l.l, s13)
}

// GenSetDistance pins the reference point 3 in terms of distance, or of arc
// length when the ArcMode flag is given.
func (l *Line) GenSetDistance(flags Flags, s13A13 float64) {
	geodGenSetDistance(&l.l, flags, s13A13)
}

// Latitude of point 1 (degrees).
func (l *Line) Latitude() float64 { return l.l.lat1 }

// Longitude of point 1 (degrees).
func (l *Line) Longitude() float64 { return l.l.lon1 }

// Azimuth of the line at point 1 (degrees).
func (l *Line) Azimuth() float64 { return l.l.azi1 }

// Distance returns the distance to the reference point 3 (meters), or NaN
// if no reference point has been set.
func (l *Line) Distance() float64 { return l.l.s13 }

// Arc returns the arc length to the reference point 3 (degrees), or NaN if
// no reference point has been set.
func (l *Line) Arc() float64 { return l.l.a13 }

// Caps returns the computational capabilities of the line, including the
// implied Latitude and Azimuth.
func (l *Line) Caps() Mask { return l.l.caps }
