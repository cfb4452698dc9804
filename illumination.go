package skyglow

import (
	"math"
	"time"

	"github.com/pthorsen/skyglow/internal/astrotime"
	"github.com/pthorsen/skyglow/internal/moon"
	"github.com/pthorsen/skyglow/internal/sun"
)

// sunDistanceKm is the mean Earth-Sun distance. The incidence-angle
// geometry compares it against the Moon's true distance; the ~1.7%
// annual variation is far below this model's noise floor.
const sunDistanceKm = 149598000.0

// MoonIllumination describes how the Moon is lit at an instant. It is a
// geocentric quantity, independent of observer location.
type MoonIllumination struct {
	// Phase runs continuously through the lunation in [0, 1):
	// 0 new moon, 0.25 first quarter, 0.5 full moon, 0.75 last quarter.
	Phase float64

	// Fraction is the illuminated fraction of the visible disk, [0, 1].
	Fraction float64

	// AngleRad is the midpoint angle of the bright limb relative to
	// celestial north; negative means the bright limb faces east
	// (waxing), positive west (waning).
	AngleRad float64
}

// MoonIlluminationAt returns the Moon's illumination state at the given
// instant.
func MoonIlluminationAt(t time.Time) MoonIllumination {
	d := astrotime.ToJulianDays(t)
	return illumination(sun.Coordinates(d), moon.Coordinates(d))
}

// illumination derives the phase geometry from already-computed
// equatorial coordinates so combined queries can share them.
func illumination(s sun.Equatorial, m moon.Equatorial) MoonIllumination {
	// Sun-Moon angular separation via the spherical law of cosines.
	cosPhi := math.Sin(s.Dec)*math.Sin(m.Dec) +
		math.Cos(s.Dec)*math.Cos(m.Dec)*math.Cos(s.RA-m.RA)

	// Floating error routinely nudges the cosine just past +/-1 near
	// conjunction and opposition; acos would return NaN there.
	if cosPhi > 1 {
		cosPhi = 1
	} else if cosPhi < -1 {
		cosPhi = -1
	}
	phi := math.Acos(cosPhi)

	// Phase incidence angle at the Moon, using the true lunar distance
	// against the fixed solar distance.
	inc := math.Atan2(sunDistanceKm*math.Sin(phi), m.DistanceKm-sunDistanceKm*math.Cos(phi))

	angle := math.Atan2(
		math.Cos(s.Dec)*math.Sin(s.RA-m.RA),
		math.Sin(s.Dec)*math.Cos(m.Dec)-math.Cos(s.Dec)*math.Sin(m.Dec)*math.Cos(s.RA-m.RA),
	)

	phase := 0.5 + 0.5*inc*math.Copysign(1, angle)/math.Pi
	if phase >= 1 {
		// inc can reach pi exactly at conjunction; fold 1 back to 0 so
		// the phase stays in [0, 1).
		phase -= 1
	}

	return MoonIllumination{
		Phase:    phase,
		Fraction: (1 + math.Cos(inc)) / 2,
		AngleRad: angle,
	}
}
