// Package coords holds the shared spherical-astronomy transforms:
// ecliptic to equatorial rotation, equatorial to horizontal conversion,
// atmospheric refraction, and the horizon-frame unit vector used by
// lighting consumers. All angles are radians.
package coords

import "math"

// obliquity is the Earth's axial tilt. A fixed value is plenty for the
// low-precision models in this module (it drifts ~47 arcseconds per
// century).
const obliquity = 23.4397 * math.Pi / 180.0

// RightAscension converts ecliptic longitude l and latitude b to right
// ascension. The result is in the principal range of atan2, (-pi, pi].
func RightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(obliquity)-math.Tan(b)*math.Sin(obliquity), math.Cos(l))
}

// Declination converts ecliptic longitude l and latitude b to
// declination, in the principal range of asin, [-pi/2, pi/2].
func Declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(obliquity) + math.Cos(b)*math.Sin(obliquity)*math.Sin(l))
}

// Azimuth returns the azimuth for hour angle H, observer latitude phi,
// and declination dec. The raw atan2 here measures from SOUTH, turning
// toward west; position queries add pi to reference it from north.
func Azimuth(H, phi, dec float64) float64 {
	return math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi))
}

// Altitude returns the altitude above the horizon for hour angle H,
// observer latitude phi, and declination dec.
func Altitude(H, phi, dec float64) float64 {
	return math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(H))
}

// Refraction returns the atmospheric refraction correction for a
// geometric altitude h, to be added to h. Both are radians.
//
// Formula 16.4 of Meeus, "Astronomical Algorithms" (2nd ed.), converted
// from degree/arcminute form to pure radians. It is only valid for
// positive altitudes, so h is clamped to 0 first; at h = -0.08901179
// the denominator would hit a pole.
func Refraction(h float64) float64 {
	if h < 0 {
		h = 0
	}
	return 0.0002967 / math.Tan(h+0.00312536/(h+0.08901179))
}

// UnitVector converts horizontal coordinates to a unit direction vector
// in a +Y-up frame: azimuth 0 points at +Z and increasing azimuth
// rotates toward +X.
func UnitVector(az, alt float64) (x, y, z float64) {
	x = math.Cos(alt) * math.Sin(az)
	y = math.Sin(alt)
	z = math.Cos(alt) * math.Cos(az)
	return x, y, z
}
