// Package moon implements a low-precision geocentric lunar ephemeris:
// mean longitude, mean anomaly, and argument of latitude as linear
// functions of time, perturbed by a single dominant harmonic each, plus
// a one-term distance series. Unlike the Sun the Moon carries a
// non-zero ecliptic latitude through the equatorial rotation.
package moon

import (
	"math"

	"github.com/pthorsen/skyglow/internal/astrotime"
	"github.com/pthorsen/skyglow/internal/coords"
)

// Equatorial holds the Moon's geocentric equatorial coordinates in
// radians plus its distance from the Earth in kilometers.
type Equatorial struct {
	Dec        float64 // declination
	RA         float64 // right ascension, principal range of atan2
	DistanceKm float64
}

// Coordinates returns the Moon's geocentric equatorial coordinates and
// distance for d days since J2000.0.
func Coordinates(d float64) Equatorial {
	L := astrotime.Deg2Rad(218.316 + 13.176396*d) // mean longitude
	M := astrotime.Deg2Rad(134.963 + 13.064993*d) // mean anomaly
	F := astrotime.Deg2Rad(93.272 + 13.229350*d)  // argument of latitude

	l := L + astrotime.Deg2Rad(6.289)*math.Sin(M) // longitude
	b := astrotime.Deg2Rad(5.128) * math.Sin(F)   // latitude
	dist := 385001.0 - 20905.0*math.Cos(M)        // km

	return Equatorial{
		Dec:        coords.Declination(l, b),
		RA:         coords.RightAscension(l, b),
		DistanceKm: dist,
	}
}
