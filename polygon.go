package geodesic

import "math"

// accumulator sums values at twice the standard floating point precision,
// keeping the running total as the pair s + t with |t| <= ulp(s)/2.
type accumulator struct {
	s, t float64
}

func (a *accumulator) add(y float64) {
	// Here's Shewchuk's solution.
	z, u := sumx(y, a.t) // accumulate starting at the least significant end
	a.s, a.t = sumx(z, a.s)
	// Start is s, t decreasing and non-adjacent. Sum is now (s + t + u)
	// exactly with s, t and u non-adjacent and in decreasing order (except
	// for possible zeros).
	if a.s == 0 {
		// This implies t == 0, so result is u.
		a.s = u
	} else {
		a.t += u // Otherwise just accumulate u to t.
	}
}

// sum returns the total with y added, without changing the accumulator.
func (a accumulator) sum(y float64) float64 {
	a.add(y)
	return a.s
}

func (a *accumulator) negate() {
	a.s = -a.s
	a.t = -a.t
}

// rem reduces the total modulo y into [-y/2, y/2].
func (a *accumulator) rem(y float64) {
	a.s = math.Remainder(a.s, y)
	a.add(0) // renormalize
}

// transit counts crossings of the prime meridian's antipode by the geodesic
// from lon1 to lon2: +1 for an east-going crossing, -1 for west-going.
func transit(lon1, lon2 float64) int {
	lon12, _ := angDiff(lon1, lon2)
	lon1 = angNormalize(lon1)
	lon2 = angNormalize(lon2)
	switch {
	case lon12 > 0 && ((lon1 < 0 && lon2 >= 0) || (lon1 > 0 && lon2 == 0)):
		return 1
	case lon12 < 0 && lon1 >= 0 && lon2 < 0:
		return -1
	default:
		return 0
	}
}

// transitdirect computes floor(lon2/360) - floor(lon1/360) exactly for
// unrolled longitudes, counting full circuits made by a direct edge.
func transitdirect(lon1, lon2 float64) int {
	lon1 = math.Remainder(lon1, 720)
	lon2 = math.Remainder(lon2, 720)
	u, v := 1, 1
	if 0 <= lon2 && lon2 < 360 {
		u = 0
	}
	if 0 <= lon1 && lon1 < 360 {
		v = 0
	}
	return u - v
}

// areaReduceA reduces the accumulated area to the requested convention:
// the crossing parity selects between the enclosed region and its
// complement, reverse makes clockwise traversal positive, and sign chooses
// between a signed result in (-area0/2, area0/2] and an unsigned one in
// [0, area0).
func areaReduceA(area *accumulator, area0 float64, crossings int,
	reverse, sign bool) float64 {
	area.rem(area0)
	if crossings&1 != 0 {
		x := area0 / 2
		if area.sum(0) < 0 {
			area.add(x)
		} else {
			area.add(-x)
		}
	}
	// Area is with the clockwise sense. If !reverse convert to
	// counter-clockwise convention.
	if !reverse {
		area.negate()
	}
	if sign {
		if area.sum(0) > area0/2 {
			area.add(-area0)
		} else if area.sum(0) <= -area0/2 {
			area.add(area0)
		}
	} else {
		if area.sum(0) >= area0 {
			area.add(-area0)
		} else if area.sum(0) < 0 {
			area.add(area0)
		}
	}
	return 0 + area.sum(0)
}

// areaReduceB is areaReduceA operating on a plain scratch total, used by
// the non-mutating test queries.
func areaReduceB(area, area0 float64, crossings int,
	reverse, sign bool) float64 {
	area = math.Remainder(area, area0)
	if crossings&1 != 0 {
		if area < 0 {
			area += area0 / 2
		} else {
			area -= area0 / 2
		}
	}
	if !reverse {
		area = -area
	}
	if sign {
		if area > area0/2 {
			area -= area0
		} else if area <= -area0/2 {
			area += area0
		}
	} else {
		if area >= area0 {
			area -= area0
		} else if area < 0 {
			area += area0
		}
	}
	return 0 + area
}

// geodPolygon accumulates the perimeter and area of a geodesic polygon or
// polyline. Only O(1) state is kept: the first and latest vertices, the
// vertex count, the double-precision-doubled running sums and the
// antimeridian crossing count.
type geodPolygon struct {
	lat, lon   float64 // latest vertex
	lat0, lon0 float64 // first vertex
	area       accumulator
	perimeter  accumulator
	polyline   bool
	crossings  int
	num        int
}

func geodPolygonInit(p *geodPolygon, polyline bool) {
	p.polyline = polyline
	geodPolygonClear(p)
}

func geodPolygonClear(p *geodPolygon) {
	p.lat0 = math.NaN()
	p.lon0 = math.NaN()
	p.lat = math.NaN()
	p.lon = math.NaN()
	p.area = accumulator{}
	p.perimeter = accumulator{}
	p.crossings = 0
	p.num = 0
}

func geodPolygonAddPoint(g *geodGeodesic, p *geodPolygon, lat, lon float64) {
	lon = angNormalize(lon)
	if p.num == 0 {
		p.lat0 = lat
		p.lat = lat
		p.lon0 = lon
		p.lon = lon
	} else {
		var s12 float64
		var ss12 float64
		pS12 := &ss12
		if p.polyline {
			pS12 = nil
		}
		geodGenInverse(g, p.lat, p.lon, lat, lon,
			&s12, nil, nil, nil, nil, nil, pS12)
		p.perimeter.add(s12)
		if !p.polyline {
			p.area.add(ss12)
			p.crossings += transit(p.lon, lon)
		}
		p.lat = lat
		p.lon = lon
	}
	p.num++
}

func geodPolygonAddEdge(g *geodGeodesic, p *geodPolygon, azi, s float64) {
	if p.num == 0 {
		// An edge needs a starting vertex.
		return
	}
	var lat, lon float64
	var ss12 float64
	pS12 := &ss12
	if p.polyline {
		pS12 = nil
	}
	// The area contribution of the edge comes straight from the direct
	// solution; no redundant inverse solve. LongUnroll keeps the exact
	// winding for the crossing count.
	geodGenDirect(g, p.lat, p.lon, azi, LongUnroll, s,
		&lat, &lon, nil, nil, nil, nil, nil, pS12)
	p.perimeter.add(s)
	if !p.polyline {
		p.area.add(ss12)
		p.crossings += transitdirect(p.lon, lon)
	}
	p.lat = lat
	p.lon = angNormalize(lon)
	p.num++
}

func geodPolygonCompute(g *geodGeodesic, p *geodPolygon,
	reverse, sign bool, pA, pP *float64) int {
	if p.num < 2 {
		if pP != nil {
			*pP = 0
		}
		if pA != nil {
			*pA = 0
		}
		return p.num
	}
	if p.polyline {
		if pP != nil {
			*pP = p.perimeter.sum(0)
		}
		if pA != nil {
			*pA = 0 // polylines have no area
		}
		return p.num
	}
	// Close the polygon with the edge back to the first vertex.
	var s12, ss12 float64
	geodGenInverse(g, p.lat, p.lon, p.lat0, p.lon0,
		&s12, nil, nil, nil, nil, nil, &ss12)
	if pP != nil {
		*pP = p.perimeter.sum(s12)
	}
	t := p.area
	t.add(ss12)
	crossings := p.crossings + transit(p.lon, p.lon0)
	if pA != nil {
		*pA = areaReduceA(&t, 4*math.Pi*g.c2, crossings, reverse, sign)
	}
	return p.num
}

func geodPolygonTestPoint(g *geodGeodesic, p *geodPolygon,
	lat, lon float64, reverse, sign bool, pA, pP *float64) int {
	num := p.num + 1
	if num == 1 {
		if pP != nil {
			*pP = 0
		}
		if pA != nil {
			*pA = 0
		}
		return num
	}
	// Scratch copies only; the committed state stays untouched.
	perimeter := p.perimeter.sum(0)
	tempsum := 0.0
	if !p.polyline {
		tempsum = p.area.sum(0)
	}
	crossings := p.crossings
	endpoints := 2
	if p.polyline {
		endpoints = 1
	}
	for i := 0; i < endpoints; i++ {
		lat1, lon1 := p.lat, p.lon
		lat2, lon2 := lat, lon
		if i != 0 {
			lat1, lon1 = lat, lon
			lat2, lon2 = p.lat0, p.lon0
		}
		var s12, ss12 float64
		pS12 := &ss12
		if p.polyline {
			pS12 = nil
		}
		geodGenInverse(g, lat1, lon1, lat2, lon2,
			&s12, nil, nil, nil, nil, nil, pS12)
		perimeter += s12
		if !p.polyline {
			tempsum += ss12
			crossings += transit(lon1, lon2)
		}
	}
	if pP != nil {
		*pP = perimeter
	}
	if p.polyline {
		if pA != nil {
			*pA = 0
		}
		return num
	}
	if pA != nil {
		*pA = areaReduceB(tempsum, 4*math.Pi*g.c2, crossings, reverse, sign)
	}
	return num
}

func geodPolygonTestEdge(g *geodGeodesic, p *geodPolygon,
	azi, s float64, reverse, sign bool, pA, pP *float64) int {
	num := p.num + 1
	if num == 1 {
		// An edge needs a starting vertex.
		return 0
	}
	perimeter := p.perimeter.sum(0) + s
	if p.polyline {
		if pP != nil {
			*pP = perimeter
		}
		if pA != nil {
			*pA = 0
		}
		return num
	}
	tempsum := p.area.sum(0)
	crossings := p.crossings

	var lat, lon, s12, ss12 float64
	geodGenDirect(g, p.lat, p.lon, azi, LongUnroll, s,
		&lat, &lon, nil, nil, nil, nil, nil, &ss12)
	tempsum += ss12
	crossings += transitdirect(p.lon, lon)
	lon = angNormalize(lon)
	geodGenInverse(g, lat, lon, p.lat0, p.lon0,
		&s12, nil, nil, nil, nil, nil, &ss12)
	perimeter += s12
	tempsum += ss12
	crossings += transit(lon, p.lon0)

	if pP != nil {
		*pP = perimeter
	}
	if pA != nil {
		*pA = areaReduceB(tempsum, 4*math.Pi*g.c2, crossings, reverse, sign)
	}
	return num
}

// geodPolygonArea computes the area and perimeter of the polygon with the
// given vertices in one shot.
func geodPolygonArea(g *geodGeodesic, lats, lons []float64, pA, pP *float64) {
	var p geodPolygon
	geodPolygonInit(&p, false)
	for i := 0; i < len(lats) && i < len(lons); i++ {
		geodPolygonAddPoint(g, &p, lats[i], lons[i])
	}
	geodPolygonCompute(g, &p, false, true, pA, pP)
}
