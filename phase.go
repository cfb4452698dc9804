package skyglow

import "math"

// SunPhase names the twilight band the Sun's elevation falls into. The
// values are totally ordered from darkest to brightest.
type SunPhase int

const (
	Night SunPhase = iota
	AstronomicalTwilight
	NauticalTwilight
	CivilTwilight
	Day
)

func (p SunPhase) String() string {
	switch p {
	case Night:
		return "Night"
	case AstronomicalTwilight:
		return "Astronomical Twilight"
	case NauticalTwilight:
		return "Nautical Twilight"
	case CivilTwilight:
		return "Civil Twilight"
	case Day:
		return "Day"
	default:
		return "Unknown"
	}
}

// ClassifySunPhase maps a solar elevation in degrees to its twilight
// band. The horizon itself counts as Day (the disk center is not yet
// below it; -0.0 compares equal to 0 and behaves the same), while the
// twilight thresholds are strict, so a boundary elevation falls into
// the lower, darker band.
func ClassifySunPhase(elevationDeg float64) SunPhase {
	switch {
	case elevationDeg >= 0:
		return Day
	case elevationDeg > -6:
		return CivilTwilight
	case elevationDeg > -12:
		return NauticalTwilight
	case elevationDeg > -18:
		return AstronomicalTwilight
	default:
		return Night
	}
}

// MoonPhase names the eight conventional lunar phases.
type MoonPhase int

const (
	NewMoon MoonPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

func (p MoonPhase) String() string {
	switch p {
	case NewMoon:
		return "New Moon"
	case WaxingCrescent:
		return "Waxing Crescent"
	case FirstQuarter:
		return "First Quarter"
	case WaxingGibbous:
		return "Waxing Gibbous"
	case FullMoon:
		return "Full Moon"
	case WaningGibbous:
		return "Waning Gibbous"
	case LastQuarter:
		return "Last Quarter"
	case WaningCrescent:
		return "Waning Crescent"
	default:
		return "Unknown"
	}
}

// phaseTolerance is the half-width of the band around each cardinal
// phase value (0, 0.25, 0.5, 0.75) that still classifies as that
// cardinal phase. Exact float equality would be platform-fragile; this
// tolerance corresponds to roughly 2.5 seconds of lunation, narrow
// enough that sampled phase values land in it essentially only when the
// caller passes the cardinal value itself.
const phaseTolerance = 1e-6

// ClassifyMoonPhase maps a continuous phase value to a named phase. The
// input is wrapped into [0, 1) first, so 1 classifies as NewMoon.
func ClassifyMoonPhase(phase float64) MoonPhase {
	p := phase - math.Floor(phase)

	switch {
	case p <= phaseTolerance || p >= 1-phaseTolerance:
		return NewMoon
	case math.Abs(p-0.25) <= phaseTolerance:
		return FirstQuarter
	case math.Abs(p-0.5) <= phaseTolerance:
		return FullMoon
	case math.Abs(p-0.75) <= phaseTolerance:
		return LastQuarter
	case p < 0.25:
		return WaxingCrescent
	case p < 0.5:
		return WaxingGibbous
	case p < 0.75:
		return WaningGibbous
	default:
		return WaningCrescent
	}
}
