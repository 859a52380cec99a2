// Command geodsolve solves geodesic problems read from stdin, one per line.
//
// By default each line holds a direct problem "lat1 lon1 azi1 s12" and the
// output is "lat2 lon2 azi2". With -inverse each line holds "lat1 lon1 lat2
// lon2" and the output is "azi1 azi2 s12". With -polygon or -polyline each
// line holds a vertex "lat lon" and a single "n perimeter area" (or
// "n length" for a polyline) summary is printed at end of input.
//
// -arcmode applies to the direct problem only; combining it with another
// mode is an error.
//
// Flags may also be supplied through the environment, e.g. INVERSE=true.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/geodsolve/geodesic"
	"github.com/peterbourgon/ff"
)

func main() {
	fs := flag.NewFlagSet("geodsolve", flag.ExitOnError)
	var (
		inverse  = fs.Bool("inverse", false, "solve the inverse problem")
		polygon  = fs.Bool("polygon", false, "compute polygon perimeter and area")
		polyline = fs.Bool("polyline", false, "compute polyline length")
		arcmode  = fs.Bool("arcmode", false, "read arc length (degrees) instead of distance")
		radius   = fs.Float64("a", 6378137, "equatorial radius (meters)")
		flat     = fs.Float64("f", 1/298.257223563, "flattening")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix()); err != nil {
		log.Fatal(err)
	}
	if err := checkMode(*inverse, *polygon, *polyline, *arcmode); err != nil {
		log.Fatal(err)
	}

	e, err := geodesic.NewEllipsoid(*radius, *flat)
	if err != nil {
		log.Fatal(err)
	}

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch {
	case *polygon, *polyline:
		runPolygon(e, in, out, *polyline)
	case *inverse:
		runInverse(e, in, out)
	default:
		runDirect(e, in, out, *arcmode)
	}
	if err := in.Err(); err != nil {
		log.Fatal(err)
	}
}

// checkMode rejects flag combinations with no defined meaning.
func checkMode(inverse, polygon, polyline, arcmode bool) error {
	if arcmode && (inverse || polygon || polyline) {
		return errors.New("geodsolve: -arcmode applies to the direct problem only")
	}
	return nil
}

func runDirect(e *geodesic.Ellipsoid, in *bufio.Scanner, out *bufio.Writer,
	arcmode bool) {
	flags := geodesic.NoFlags
	if arcmode {
		flags = geodesic.ArcMode
	}
	for lineno := 1; in.Scan(); lineno++ {
		var lat1, lon1, azi1, s12 float64
		if _, err := fmt.Sscan(in.Text(), &lat1, &lon1, &azi1, &s12); err != nil {
			log.Fatalf("line %d: %v", lineno, err)
		}
		var lat2, lon2, azi2 float64
		e.GeneralDirect(lat1, lon1, azi1, flags, s12,
			&lat2, &lon2, &azi2, nil, nil, nil, nil, nil)
		fmt.Fprintf(out, "%.8f %.8f %.8f\n", lat2, lon2, azi2)
	}
}

func runInverse(e *geodesic.Ellipsoid, in *bufio.Scanner, out *bufio.Writer) {
	for lineno := 1; in.Scan(); lineno++ {
		var lat1, lon1, lat2, lon2 float64
		if _, err := fmt.Sscan(in.Text(), &lat1, &lon1, &lat2, &lon2); err != nil {
			log.Fatalf("line %d: %v", lineno, err)
		}
		var s12, azi1, azi2 float64
		e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)
		fmt.Fprintf(out, "%.8f %.8f %.3f\n", azi1, azi2, s12)
	}
}

func runPolygon(e *geodesic.Ellipsoid, in *bufio.Scanner, out *bufio.Writer,
	polyline bool) {
	p := e.PolygonInit(polyline)
	for lineno := 1; in.Scan(); lineno++ {
		var lat, lon float64
		if _, err := fmt.Sscan(in.Text(), &lat, &lon); err != nil {
			log.Fatalf("line %d: %v", lineno, err)
		}
		p.AddPoint(lat, lon)
	}
	var area, perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	if polyline {
		fmt.Fprintf(out, "%d %.3f\n", n, perimeter)
	} else {
		fmt.Fprintf(out, "%d %.3f %.1f\n", n, perimeter, area)
	}
}
