// Package astrotime converts wall-clock instants into the continuous
// time arguments the ephemeris formulas take: fractional days since the
// J2000.0 epoch, full Julian dates, and sidereal angles.
package astrotime

import (
	"math"
	"time"
)

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// ToJulianDays returns the number of (UTC) days between t and the
// J2000.0 epoch, including the fractional part. Negative for instants
// before the epoch.
//
// This treats UTC as a continuous clock, which is what the
// low-precision position formulas expect. Leap seconds are ignored.
func ToJulianDays(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// JulianDate returns the full Julian date for t (UTC), using the
// standard calendar algorithm valid for the Gregorian era.
func JulianDate(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	// January and February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := y / 100
	b := 2 - a + a/4

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		hour/24.0
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return (JulianDate(t) - 2451545.0) / 36525.0
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Normalize360 reduces an angle in degrees to [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// SiderealTime returns the local sidereal angle in radians for d days
// since J2000.0 and a west-positive longitude lw in radians.
//
// The result is deliberately NOT wrapped: it feeds directly into an
// hour angle whose trigonometric consumers are periodic anyway.
func SiderealTime(d, lw float64) float64 {
	return Deg2Rad(280.16+360.9856235*d) - lw
}

// LocalSiderealTimeDeg returns the local mean sidereal time in degrees,
// normalized to [0, 360), for an east-positive longitude in degrees.
//
// Greenwich mean sidereal time uses the IAU 1982 polynomial in the
// Julian date relative to J2000 noon (2451545.0).
func LocalSiderealTimeDeg(t time.Time, lonDeg float64) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize360(gmst + lonDeg)
}
