package geodesic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A one degree square sitting on the equator, counter-clockwise.
var equatorQuad = [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

func addAll(p *Polygon, pts [][2]float64) {
	for _, pt := range pts {
		p.AddPoint(pt[0], pt[1])
	}
}

func TestPolygonEquatorQuad(t *testing.T) {
	p := WGS84.PolygonInit(false)
	addAll(&p, equatorQuad)

	var area, perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 4, n)
	// Roughly a 111km square.
	assert.InEpsilon(t, 1.236e10, area, 0.02)
	assert.InEpsilon(t, 4*111.2e3, perimeter, 0.01)
	assert.Greater(t, area, 0.0)
}

func TestPolygonOrientationAndSign(t *testing.T) {
	ccw := WGS84.PolygonInit(false)
	addAll(&ccw, equatorQuad)
	var a float64
	ccw.Compute(false, true, &a, nil)

	cw := WGS84.PolygonInit(false)
	for i := len(equatorQuad) - 1; i >= 0; i-- {
		cw.AddPoint(equatorQuad[i][0], equatorQuad[i][1])
	}

	// Signed: the clockwise traversal is simply negated.
	var signed float64
	cw.Compute(false, true, &signed, nil)
	assert.InDelta(t, -a, signed, math.Abs(a)*1e-12)

	// With reverse set, clockwise counts as positive.
	var reversed float64
	cw.Compute(true, true, &reversed, nil)
	assert.InDelta(t, a, reversed, math.Abs(a)*1e-12)

	// Unsigned: the "wrong" direction yields the rest of the earth, and
	// the two complements add up to the full surface.
	var unsigned float64
	cw.Compute(false, false, &unsigned, nil)
	assert.InDelta(t, WGS84.TotalArea(), a+unsigned, 10)
}

func TestPolygonAntimeridian(t *testing.T) {
	// A two degree wide quad straddling the 180 meridian.
	p := WGS84.PolygonInit(false)
	for _, pt := range [][2]float64{{0, 179}, {0, -179}, {1, -179}, {1, 179}} {
		p.AddPoint(pt[0], pt[1])
	}
	var area, perimeter float64
	p.Compute(false, true, &area, &perimeter)
	assert.Greater(t, area, 0.0)
	// Twice the one degree equator quad, not its complement.
	assert.InEpsilon(t, 2*1.236e10, area, 0.02)
	assert.Less(t, perimeter, 1e6)
}

func TestPolygonPoleEncircling(t *testing.T) {
	// Four points on the 89th parallel walked eastward enclose the north
	// pole; the crossing parity must kick in for the area to come out as
	// the small polar cap rather than its complement.
	p := WGS84.PolygonInit(false)
	for _, lon := range []float64{0, 90, 180, -90} {
		p.AddPoint(89, lon)
	}
	var area, perimeter float64
	p.Compute(false, true, &area, &perimeter)
	assert.Greater(t, area, 0.0)
	assert.Less(t, area, 1e11)
	// Four near-straight chords across the cap.
	assert.InEpsilon(t, 631768, perimeter, 0.01)
}

func TestPolylinePerimeterOnly(t *testing.T) {
	p := WGS84.PolygonInit(true)
	addAll(&p, equatorQuad)

	area, perimeter := math.NaN(), 0.0
	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 4, n)
	// A polyline has no closing edge and always reports zero area.
	assert.Equal(t, 0.0, area)
	assert.InEpsilon(t, 3*111.2e3, perimeter, 0.01)

	// TestPoint extends the polyline by a single edge.
	var tp float64
	p.TestPoint(0, 0, false, true, nil, &tp)
	assert.Greater(t, tp, perimeter)
}

func TestPolylineFewPointsZeroArea(t *testing.T) {
	// A polyline reports zero area through every path, including the
	// degenerate empty and single-vertex cases; a stale value in the out
	// param must be overwritten.
	p := WGS84.PolygonInit(true)

	area := 12345.0
	n := p.Compute(false, true, &area, nil)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, area)

	area = 12345.0
	n = p.TestPoint(10, 20, false, true, &area, nil)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.0, area)

	p.AddPoint(10, 20)
	area = 12345.0
	n = p.Compute(false, true, &area, nil)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.0, area)
}

func TestPolygonFewPoints(t *testing.T) {
	p := WGS84.PolygonInit(false)
	var area, perimeter float64

	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	p.AddPoint(10, 20)
	n = p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	// A two point polygon is a degenerate sliver: out and back.
	p.AddPoint(10, 21)
	var s12 float64
	WGS84.Inverse(10, 20, 10, 21, &s12, nil, nil)
	n = p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0, area, 1.0)
	assert.InDelta(t, 2*s12, perimeter, 1e-6)
}

func TestPolygonTestCallsDoNotMutate(t *testing.T) {
	p := WGS84.PolygonInit(false)
	addAll(&p, equatorQuad[:3])

	var area0, perim0 float64
	p.Compute(false, true, &area0, &perim0)

	var scratch float64
	p.TestPoint(1, 0, false, true, &scratch, &scratch)
	p.TestPoint(-5, 33, true, false, &scratch, &scratch)
	p.TestEdge(270, 111e3, false, true, &scratch, &scratch)
	p.TestEdge(45, 5e6, true, false, &scratch, &scratch)

	var area1, perim1 float64
	p.Compute(false, true, &area1, &perim1)
	require.Equal(t, area0, area1)
	require.Equal(t, perim0, perim1)

	// Interleaved test calls must not perturb later commits either.
	p.AddPoint(equatorQuad[3][0], equatorQuad[3][1])
	p.TestEdge(0, 1e5, false, true, &scratch, &scratch)
	var area2, perim2 float64
	p.Compute(false, true, &area2, &perim2)

	fresh := WGS84.PolygonInit(false)
	addAll(&fresh, equatorQuad)
	var warea, wperim float64
	fresh.Compute(false, true, &warea, &wperim)
	require.Equal(t, warea, area2)
	require.Equal(t, wperim, perim2)
}

func TestPolygonTestPointPredictsCommit(t *testing.T) {
	p := WGS84.PolygonInit(false)
	addAll(&p, equatorQuad[:3])

	var tarea, tperim float64
	tn := p.TestPoint(1, 0, false, true, &tarea, &tperim)

	p.AddPoint(1, 0)
	var area, perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	require.Equal(t, tn, n)
	require.InDelta(t, area, tarea, math.Abs(area)*1e-12)
	require.InDelta(t, perimeter, tperim, perimeter*1e-12)
}

func TestPolygonAddEdgeMatchesAddPoint(t *testing.T) {
	// Build the same quad twice, once from vertices and once by walking
	// the edges from the first vertex.
	byPoint := WGS84.PolygonInit(false)
	addAll(&byPoint, equatorQuad)
	var pa, pp float64
	byPoint.Compute(false, true, &pa, &pp)

	byEdge := WGS84.PolygonInit(false)
	byEdge.AddPoint(equatorQuad[0][0], equatorQuad[0][1])
	for i := 1; i < len(equatorQuad); i++ {
		prev, cur := equatorQuad[i-1], equatorQuad[i]
		var s12, azi1 float64
		WGS84.Inverse(prev[0], prev[1], cur[0], cur[1], &s12, &azi1, nil)

		// The edge should predict the same result before it is added.
		var ta float64
		byEdge.TestEdge(azi1, s12, false, true, &ta, nil)

		byEdge.AddEdge(azi1, s12)
		var ea float64
		byEdge.Compute(false, true, &ea, nil)
		require.InDelta(t, ea, ta, math.Max(math.Abs(ea)*1e-9, 1.0))
	}

	var ea, ep float64
	byEdge.Compute(false, true, &ea, &ep)
	assert.InDelta(t, pa, ea, math.Abs(pa)*1e-9)
	assert.InDelta(t, pp, ep, pp*1e-9)

	// AddEdge before any point is a no-op.
	empty := WGS84.PolygonInit(false)
	empty.AddEdge(90, 1e5)
	assert.Equal(t, 0, empty.Compute(false, true, nil, nil))
	assert.Equal(t, 0, empty.TestEdge(90, 1e5, false, true, nil, nil))
}

func TestPolygonClear(t *testing.T) {
	p := WGS84.PolygonInit(false)
	addAll(&p, equatorQuad)
	p.Clear()
	var area, perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	// The cleared accumulator must behave like a fresh one.
	addAll(&p, equatorQuad)
	var again float64
	p.Compute(false, true, &again, nil)
	fresh := WGS84.PolygonInit(false)
	addAll(&fresh, equatorQuad)
	var want float64
	fresh.Compute(false, true, &want, nil)
	assert.Equal(t, want, again)
}

func TestPolygonAreaOneShot(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 20; trial++ {
		// A star-shaped polygon around a random center point.
		clat := rng.Float64()*120 - 60
		clon := rng.Float64()*360 - 180
		n := 3 + rng.Intn(8)
		lats := make([]float64, n)
		lons := make([]float64, n)
		inc := WGS84.PolygonInit(false)
		for i := 0; i < n; i++ {
			azi := -180 + 360*float64(i)/float64(n)
			dist := 1e5 + rng.Float64()*5e5
			var lat, lon float64
			WGS84.Direct(clat, clon, azi, dist, &lat, &lon, nil)
			lats[i], lons[i] = lat, lon
			inc.AddPoint(lat, lon)
		}

		var area, perimeter float64
		WGS84.PolygonArea(lats, lons, &area, &perimeter)
		var iarea, iperimeter float64
		inc.Compute(false, true, &iarea, &iperimeter)
		require.Equal(t, iarea, area)
		require.Equal(t, iperimeter, perimeter)
		require.Greater(t, perimeter, 0.0)
		require.NotZero(t, area)
	}
}
