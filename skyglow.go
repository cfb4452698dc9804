// Package skyglow computes approximate positions and illumination state
// of the Sun and Moon for an observer at a given latitude/longitude and
// instant, and classifies the results into twilight and lunar phase
// bands.
//
// The models are deliberately low-precision: single-term Meeus-style
// series good to a fraction of a degree, intended for visually
// plausible scene lighting, horizon dashboards, and similar consumers
// rather than for almanac work. Every function here is pure; nothing is
// cached between calls, so computing a position once per rendered frame
// is fine.
//
// Degrees vs radians: public snapshot types carry degree-valued fields
// with a Deg suffix; the raw position queries return radians with a Rad
// suffix. Internally everything is radians.
package skyglow

import (
	"math"
	"time"

	"github.com/pthorsen/skyglow/internal/astrotime"
	"github.com/pthorsen/skyglow/internal/coords"
	"github.com/pthorsen/skyglow/internal/moon"
	"github.com/pthorsen/skyglow/internal/sun"
)

// Coordinates represent an observer's location.
//
// No range validation is performed: the formulas are periodic and
// degrade gracefully outside the physical ranges, they just stop
// meaning anything.
type Coordinates struct {
	Lat float64 // degrees, north positive
	Lon float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
}

// SunPosition is the Sun's horizontal position in radians. Azimuth is
// measured from north, increasing toward east.
type SunPosition struct {
	AzimuthRad  float64
	AltitudeRad float64
}

// MoonPosition is the Moon's horizontal position in radians plus its
// distance. Altitude includes atmospheric refraction.
type MoonPosition struct {
	AzimuthRad  float64
	AltitudeRad float64
	DistanceKm  float64
}

// Vector3 is a unit direction vector in a +Y-up frame: azimuth 0 points
// at +Z and increasing azimuth rotates toward +X. Lighting consumers
// use it to orient a directional light at a body.
type Vector3 struct {
	X, Y, Z float64
}

// DirectionVector converts horizontal coordinates in radians to a unit
// direction vector.
func DirectionVector(azimuthRad, altitudeRad float64) Vector3 {
	x, y, z := coords.UnitVector(azimuthRad, altitudeRad)
	return Vector3{X: x, Y: y, Z: z}
}

// SunPositionAt returns the Sun's horizontal position for an observer
// at the given instant. No refraction is applied; the Sun's position
// drives lighting direction, where the sub-degree bending near the
// horizon is not worth the apparent-altitude discontinuities.
func SunPositionAt(t time.Time, obs Coordinates) SunPosition {
	d := astrotime.ToJulianDays(t)
	return sunPosition(d, obs, sun.Coordinates(d))
}

// MoonPositionAt returns the Moon's horizontal position and distance
// for an observer at the given instant, with refraction added to the
// altitude.
func MoonPositionAt(t time.Time, obs Coordinates) MoonPosition {
	d := astrotime.ToJulianDays(t)
	return moonPosition(d, obs, moon.Coordinates(d))
}

// sunPosition derives the horizontal position from already-computed
// equatorial coordinates, so that combined queries can share them.
func sunPosition(d float64, obs Coordinates, eq sun.Equatorial) SunPosition {
	lw := astrotime.Deg2Rad(-obs.Lon) // west-positive internally
	phi := astrotime.Deg2Rad(obs.Lat)

	H := astrotime.SiderealTime(d, lw) - eq.RA

	return SunPosition{
		// +pi references azimuth from north instead of south.
		AzimuthRad:  coords.Azimuth(H, phi, eq.Dec) + math.Pi,
		AltitudeRad: coords.Altitude(H, phi, eq.Dec),
	}
}

func moonPosition(d float64, obs Coordinates, eq moon.Equatorial) MoonPosition {
	lw := astrotime.Deg2Rad(-obs.Lon)
	phi := astrotime.Deg2Rad(obs.Lat)

	H := astrotime.SiderealTime(d, lw) - eq.RA
	h := coords.Altitude(H, phi, eq.Dec)
	h += coords.Refraction(h)

	return MoonPosition{
		AzimuthRad:  coords.Azimuth(H, phi, eq.Dec) + math.Pi,
		AltitudeRad: h,
		DistanceKm:  eq.DistanceKm,
	}
}

// SunProperties is a degree-valued snapshot of the Sun for one observer
// and instant, including its twilight band.
type SunProperties struct {
	AzimuthDeg   float64
	ElevationDeg float64
	Phase        SunPhase
}

// MoonProperties is a degree-valued snapshot of the Moon for one
// observer and instant, including illumination and phase.
type MoonProperties struct {
	DistanceKm   float64
	Illumination float64 // illuminated fraction of the disk, [0, 1]
	AzimuthDeg   float64
	ElevationDeg float64
	Phase        MoonPhase
}

// Sky is a combined Sun/Moon snapshot, computed from one set of
// equatorial coordinates per body so the position and illumination
// figures are internally consistent.
type Sky struct {
	Time time.Time
	Sun  SunProperties
	Moon MoonProperties
}

// SunPropertiesAt returns the Sun's degree-valued snapshot for an
// observer at the given instant.
func SunPropertiesAt(t time.Time, obs Coordinates) SunProperties {
	pos := SunPositionAt(t, obs)
	elev := astrotime.Rad2Deg(pos.AltitudeRad)

	return SunProperties{
		AzimuthDeg:   astrotime.Rad2Deg(pos.AzimuthRad),
		ElevationDeg: elev,
		Phase:        ClassifySunPhase(elev),
	}
}

// MoonPropertiesAt returns the Moon's degree-valued snapshot for an
// observer at the given instant.
func MoonPropertiesAt(t time.Time, obs Coordinates) MoonProperties {
	d := astrotime.ToJulianDays(t)
	s := sun.Coordinates(d)
	m := moon.Coordinates(d)
	return moonProperties(d, obs, s, m)
}

// SkyAt returns a combined Sun and Moon snapshot for an observer at the
// given instant. The two bodies' equatorial coordinates are computed
// once each and shared between position and illumination, so the moon
// figures cannot drift apart the way separate queries could.
func SkyAt(t time.Time, obs Coordinates) Sky {
	d := astrotime.ToJulianDays(t)
	s := sun.Coordinates(d)
	m := moon.Coordinates(d)

	sunPos := sunPosition(d, obs, s)
	sunElev := astrotime.Rad2Deg(sunPos.AltitudeRad)

	return Sky{
		Time: t,
		Sun: SunProperties{
			AzimuthDeg:   astrotime.Rad2Deg(sunPos.AzimuthRad),
			ElevationDeg: sunElev,
			Phase:        ClassifySunPhase(sunElev),
		},
		Moon: moonProperties(d, obs, s, m),
	}
}

func moonProperties(d float64, obs Coordinates, s sun.Equatorial, m moon.Equatorial) MoonProperties {
	pos := moonPosition(d, obs, m)
	ill := illumination(s, m)

	return MoonProperties{
		DistanceKm:   pos.DistanceKm,
		Illumination: ill.Fraction,
		AzimuthDeg:   astrotime.Rad2Deg(pos.AzimuthRad),
		ElevationDeg: astrotime.Rad2Deg(pos.AltitudeRad),
		Phase:        ClassifyMoonPhase(ill.Phase),
	}
}
