// Package sun implements a low-precision geocentric solar ephemeris:
// mean anomaly, ecliptic longitude with a three-term equation of
// center, and the equatorial coordinates derived from them. Good to a
// few arcminutes, which is all the lighting-oriented consumers need.
package sun

import (
	"math"

	"github.com/pthorsen/skyglow/internal/astrotime"
	"github.com/pthorsen/skyglow/internal/coords"
)

// Equatorial holds the Sun's geocentric equatorial coordinates in
// radians. The Sun is treated as having zero ecliptic latitude.
type Equatorial struct {
	Dec float64 // declination
	RA  float64 // right ascension, principal range of atan2
}

// MeanAnomaly returns the Sun's mean anomaly in radians for d days
// since J2000.0. Deliberately unwrapped; it only feeds periodic
// functions and wrapping would just lose monotonicity.
func MeanAnomaly(d float64) float64 {
	return astrotime.Deg2Rad(357.5291 + 0.98560028*d)
}

// EclipticLongitude returns the Sun's ecliptic longitude in radians for
// mean anomaly m: the equation-of-center correction, the longitude of
// perihelion, plus pi to point from the Earth toward the Sun rather
// than the other way around.
func EclipticLongitude(m float64) float64 {
	// Equation of center, first three harmonics.
	c := astrotime.Deg2Rad(1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))

	// Perihelion of the Earth.
	p := astrotime.Deg2Rad(102.9372)

	return m + c + p + math.Pi
}

// Coordinates returns the Sun's geocentric equatorial coordinates for d
// days since J2000.0.
func Coordinates(d float64) Equatorial {
	m := MeanAnomaly(d)
	l := EclipticLongitude(m)

	return Equatorial{
		Dec: coords.Declination(l, 0),
		RA:  coords.RightAscension(l, 0),
	}
}
