package geodesic

// geodGenDirect solves the general direct problem by constructing a
// geodesic line with exactly the capabilities the requested outputs need
// and querying it once. Returns the arc length a12 (degrees).
func geodGenDirect(g *geodGeodesic, lat1, lon1, azi1 float64, flags Flags,
	s12A12 float64,
	plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12 *float64) float64 {

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
	// Automatically supply DistanceIn if distance is given as input.
	if flags&ArcMode == 0 {
		outmask |= DistanceIn
	}

	var l geodGeodesicLine
	geodLineInit(&l, g, lat1, lon1, azi1, outmask)
	return geodGenPosition(&l, flags, s12A12,
		plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12)
}

// geodDirect solves the direct problem for the quantities most callers
// need: the target point and the azimuth there.
func geodDirect(g *geodGeodesic, lat1, lon1, azi1, s12 float64,
	plat2, plon2, pazi2 *float64) {
	geodGenDirect(g, lat1, lon1, azi1, NoFlags, s12,
		plat2, plon2, pazi2, nil, nil, nil, nil, nil)
}
