package geodesic

// Mask is a set of capability bits shared between the Ellipsoid solvers and
// Line objects. A Line precomputes only the series coefficients demanded by
// the capabilities it was constructed with; asking it later for a quantity
// outside its capabilities yields a NaN or zero value rather than an error.
//
// The low-order bits (capC1..capC4) select coefficient tables and are an
// implementation detail; the exported bits carry the documented semantics.
type Mask uint

const (
	capNone Mask = 0
	capC1   Mask = 1 << 0
	capC1p  Mask = 1 << 1
	capC2   Mask = 1 << 2
	capC3   Mask = 1 << 3
	capC4   Mask = 1 << 4
	capAll  Mask = 0x1f
	outAll  Mask = 0x7f80
	outMask Mask = 0xff80 // outAll plus the longitude-unroll bit
)

const (
	// None requests no capabilities. A Line still reports the latitude and
	// azimuth of the target point; those capabilities are always implied.
	None Mask = 0

	// Latitude of the target point. Always available.
	Latitude Mask = 1<<7 | capNone

	// Longitude of the target point.
	Longitude Mask = 1<<8 | capC3

	// Azimuth at the target point. Always available.
	Azimuth Mask = 1<<9 | capNone

	// Distance between the points (meters, for WGS84).
	Distance Mask = 1<<10 | capC1

	// Standard is the default set: latitude, longitude, azimuth and distance.
	Standard Mask = Latitude | Longitude | Azimuth | Distance

	// DistanceIn allows a Line position to be specified in terms of
	// distance rather than arc length.
	DistanceIn Mask = 1<<11 | capC1 | capC1p

	// ReducedLength m12 between the points.
	ReducedLength Mask = 1<<12 | capC1 | capC2

	// GeodesicScale M12 and M21.
	GeodesicScale Mask = 1<<13 | capC1 | capC2

	// Area S12 under the geodesic segment.
	Area Mask = 1<<14 | capC4

	// All of the above.
	All Mask = outAll | capAll
)

// Flags modify how GeneralDirect, GenPosition and GenSetDistance interpret
// and report their arguments. Flags are orthogonal to capabilities and may
// be combined.
type Flags uint

const (
	// NoFlags requests the default behavior.
	NoFlags Flags = 0

	// ArcMode interprets the distance argument s12A12 as an arc length in
	// degrees on the auxiliary sphere instead of a distance in meters.
	ArcMode Flags = 1 << 0

	// LongUnroll reports longitude as a quantity accumulated along the
	// geodesic so that lon2-lon1 tracks the total change in longitude,
	// instead of reducing lon2 to (-180,180].
	LongUnroll Flags = 1 << 15
)

// longUnroll as a Mask bit, for mixing flags into an output mask.
const longUnrollMask = Mask(LongUnroll)
