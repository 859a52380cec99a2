// Package geodesic solves the direct and inverse geodesic problems on an
// ellipsoid of revolution, and computes the perimeter and area of geodesic
// polygons and polylines.
package geodesic

import (
	"fmt"
	"math"
)

// WGS84 conforming ellipsoid.
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = mustEllipsoid(NewEllipsoid(6378137, float64(1.)/298.257223563))

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = mustEllipsoid(NewSpherical(6378137))

func mustEllipsoid(e *Ellipsoid, err error) *Ellipsoid {
	if err != nil {
		panic(err)
	}
	return e
}

// Ellipsoid is an object for performing geodesic operations.
type Ellipsoid struct {
	g          geodGeodesic
	radius     float64
	flattening float64
	spherical  bool
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The radius must be a positive finite number and the flattening must be
// less than 1 (oblate or prolate, never degenerate); invalid parameters
// yield a descriptive error, never a silently clamped ellipsoid.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) (*Ellipsoid, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf(
			"geodesic: equatorial radius %v is not a positive finite number",
			radius)
	}
	if math.IsNaN(flattening) || !(flattening < 1) {
		return nil, fmt.Errorf(
			"geodesic: flattening %v does not satisfy f < 1", flattening)
	}
	e := &Ellipsoid{radius: radius, flattening: flattening}
	geodInit(&e.g, radius, flattening)
	return e, nil
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations will often be more computationally
// efficient than NewEllipsoid because it uses simpler great-circle
// calculations such as the Haversine formula.
//
// Param radius is the equatorial radius (meters).
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) (*Ellipsoid, error) {
	e, err := NewEllipsoid(radius, 0)
	if err != nil {
		return nil, err
	}
	e.spherical = true
	return e, nil
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// TotalArea returns the total surface area of the ellipsoid
// (meters-squared for WGS84).
func (e *Ellipsoid) TotalArea() float64 {
	return 4 * math.Pi * e.g.c2
}

// Inverse solves the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param ps12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param pazi1 is a pointer to the azimuth at point 1 (degrees).
// Out param pazi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 and lat2 should be in the range [-90,+90]; latitudes outside that
// range propagate as NaN results.
// The values of azi1 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, ps12, etc., may be replaced with nil, if you
// do not need some quantities computed.
//
// The solution to the inverse problem is found using Newton's method.  If
// this fails to converge (this is very unlikely in geodetic applications
// but does occur for very eccentric ellipsoids), then the bisection method
// is used to refine the solution.
func (e *Ellipsoid) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	if e.spherical {
		sphericalInverse(e.radius, lat1, lon1, lat2, lon2, s12, azi1, azi2)
	} else {
		geodInverse(&e.g, lat1, lon1, lat2, lon2, s12, azi1, azi2)
	}
}

// GeneralInverse solves the inverse geodesic problem with the full set of
// outputs: distance, azimuths, reduced length m12, geodesic scales M12 and
// M21, and the area S12 between the geodesic and the equator. Any out
// param may be nil. Returns the arc length a12 on the auxiliary sphere
// (degrees).
//
// This always uses the full ellipsoidal solver, even for an Ellipsoid
// initialized with NewSpherical.
func (e *Ellipsoid) GeneralInverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2, m12, M12, M21, S12 *float64,
) float64 {
	return geodGenInverse(&e.g, lat1, lon1, lat2, lon2,
		s12, azi1, azi2, m12, M12, M21, S12)
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param plat2 is a pointer to the latitude of point 2 (degrees).
// Out param plon2 is a pointer to the longitude of point 2 (degrees).
// Out param pazi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 should be in the range [-90,+90].
// The values of lon2 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, plat2, etc., may be replaced with nil, if you
// do not need some quantities computed.
func (e *Ellipsoid) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	if e.spherical {
		sphericalDirect(e.radius, lat1, lon1, azi1, s12, lat2, lon2, azi2)
	} else {
		geodDirect(&e.g, lat1, lon1, azi1, s12, lat2, lon2, azi2)
	}
}

// GeneralDirect solves the direct geodesic problem with the full set of
// outputs. With the ArcMode flag, s12A12 is the arc length from point 1 to
// point 2 (degrees) instead of a distance; with the LongUnroll flag, lon2
// is reported as an accumulated quantity rather than reduced to
// (-180,180]. Any out param may be nil. Returns the arc length a12
// (degrees).
//
// This always uses the full ellipsoidal solver, even for an Ellipsoid
// initialized with NewSpherical.
func (e *Ellipsoid) GeneralDirect(
	lat1, lon1, azi1 float64, flags Flags, s12A12 float64,
	lat2, lon2, azi2, s12, m12, M12, M21, S12 *float64,
) float64 {
	return geodGenDirect(&e.g, lat1, lon1, azi1, flags, s12A12,
		lat2, lon2, azi2, s12, m12, M12, M21, S12)
}

// Polygon struct for accumulating information about a geodesic polygon.
// Used for computing the perimeter and area of a polygon.
// This must be initialized from Ellipsoid.PolygonInit before use.
type Polygon struct {
	e *Ellipsoid
	p geodPolygon
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices and edges added by
// Polygon.AddPoint() and Polygon.AddEdge() define a polygon and
// the perimeter and area are returned by Polygon.Compute().
// If polyline is set, then the vertices and edges define a polyline and
// only the perimeter is returned by Polygon.Compute().
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  At any point you can ask for the perimeter and area so far.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	var p Polygon
	p.e = e
	geodPolygonInit(&p.p, polyline)
	return p
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	geodPolygonAddPoint(&p.e.g, &p.p, lat, lon)
}

// AddEdge adds an edge to the polygon or polyline.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
//
// The edge's endpoint becomes the new current point, as if added by
// AddPoint. This does nothing if no starting point has been added yet.
func (p *Polygon) AddEdge(azi, s float64) {
	geodPolygonAddEdge(&p.e.g, &p.p, azi, s)
}

// Compute the results for a polygon
//
// Param reverse, if set then clockwise (instead of
//	counter-clockwise) traversal counts as a positive area.
//
// Param sign, if set then return a signed result for the area if
//	the polygon is traversed in the "wrong" direction instead of returning
//	the area for the rest of the earth.
//
// Out param pA is a pointer to the area of the polygon (meters-squared);
//	always 0 for a polyline.
//
// Out param pP is a pointer to the perimeter of the polygon or length of the
//	polyline (meters).
//
// Returns the number of points.
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  Arbitrarily complex polygons are allowed.  In the case of
// self-intersecting polygons the area is accumulated "algebraically", e.g.,
// the areas of the 2 loops in a figure-8 polygon will partially cancel.
// There's no need to "close" the polygon by repeating the first vertex.  Set
// pA or pP to nil, if you do not want the corresponding quantity returned.
//
// More points can be added to the polygon after this call.
func (p *Polygon) Compute(reverse, sign bool, area, perimeter *float64) int {
	return geodPolygonCompute(&p.e.g, &p.p, reverse, sign, area, perimeter)
}

// TestPoint returns what Compute would return if one additional vertex at
// (lat,lon) were added, without committing it: the polygon's running sums,
// vertex count and last vertex are guaranteed unchanged after the call.
// Returns the would-be number of points.
func (p *Polygon) TestPoint(lat, lon float64, reverse, sign bool,
	area, perimeter *float64) int {
	return geodPolygonTestPoint(&p.e.g, &p.p, lat, lon, reverse, sign,
		area, perimeter)
}

// TestEdge returns what Compute would return if one additional edge with
// the given azimuth (degrees) and distance (meters) were added, without
// committing it. Returns the would-be number of points, or 0 if the
// polygon has no starting point yet.
func (p *Polygon) TestEdge(azi, s float64, reverse, sign bool,
	area, perimeter *float64) int {
	return geodPolygonTestEdge(&p.e.g, &p.p, azi, s, reverse, sign,
		area, perimeter)
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	geodPolygonClear(&p.p)
}

// PolygonArea computes the area and perimeter of the polygon with vertices
// (lats[i], lons[i]) in one shot. It is equivalent to initializing a
// non-polyline Polygon, adding all the points in sequence, and calling
// Compute with reverse=false and sign=true. Either out param may be nil.
func (e *Ellipsoid) PolygonArea(lats, lons []float64, area, perimeter *float64) {
	geodPolygonArea(&e.g, lats, lons, area, perimeter)
}
