package skyglow

import (
	"errors"
	"fmt"
	"time"

	"github.com/pthorsen/skyglow/internal/astrotime"
	"github.com/pthorsen/skyglow/internal/scan"
)

// Body identifies a celestial body for event queries.
type Body int

const (
	Sun Body = iota
	Moon
)

// TwilightKind identifies a twilight threshold by the Sun's altitude
// below the horizon.
type TwilightKind int

const (
	// TwilightCivil corresponds to the Sun's center at -6 degrees.
	TwilightCivil TwilightKind = iota
	// TwilightNautical corresponds to -12 degrees.
	TwilightNautical
	// TwilightAstronomical corresponds to -18 degrees.
	TwilightAstronomical
)

// RiseSet holds rise and set times of a body on a given date. For
// twilight queries Rise is the dawn (upward) crossing and Set the dusk
// (downward) crossing.
type RiseSet struct {
	Rise time.Time
	Set  time.Time
}

// Window is a continuous interval where the Sun's altitude stays within
// a particular range, such as golden hour.
type Window struct {
	Start time.Time
	End   time.Time
}

// DaylightWindows holds the morning and evening windows for a banded
// phase like golden hour or blue hour. High latitudes can lack either
// window on a given date; the Has flags say which exist.
type DaylightWindows struct {
	Morning    Window
	Evening    Window
	HasMorning bool
	HasEvening bool
}

// ErrNoRiseNoSet is returned when a body does not rise or set on that
// date at that location.
var ErrNoRiseNoSet = errors.New("body does not rise or set on this date")

const (
	// sunHorizonDeg is the Sun's center altitude when its upper limb
	// sits on the apparent horizon: refraction plus apparent radius.
	sunHorizonDeg = -0.833

	// moonHorizonDeg is the equivalent for the Moon, applied on top of
	// the already-refracted altitude the position query returns.
	moonHorizonDeg = 0.133

	// The Moon moves ~0.5 degrees per hour against the stars; half-hour
	// sampling brackets its crossings comfortably, and is more than
	// enough for the Sun.
	scanSamples = 48
	scanTol     = 30 * time.Second
)

// RiseSetAt returns rise and set times for the given body and observer
// on the local calendar date of date. The returned times are in date's
// time zone, pinned to the requested calendar date.
func RiseSetAt(body Body, obs Coordinates, date time.Time) (RiseSet, error) {
	switch body {
	case Sun:
		return crossingsFor(obs, date, sunHorizonDeg, sunAltitudeDeg)
	case Moon:
		return crossingsFor(obs, date, moonHorizonDeg, moonAltitudeDeg)
	default:
		return RiseSet{}, fmt.Errorf("unknown body %v", body)
	}
}

// TwilightAt returns dawn (Rise) and dusk (Set) of the given kind for
// the observer on the local calendar date of date.
func TwilightAt(obs Coordinates, date time.Time, kind TwilightKind) (RiseSet, error) {
	var targetAlt float64
	switch kind {
	case TwilightCivil:
		targetAlt = -6.0
	case TwilightNautical:
		targetAlt = -12.0
	case TwilightAstronomical:
		targetAlt = -18.0
	default:
		return RiseSet{}, fmt.Errorf("unknown TwilightKind: %d", kind)
	}

	return crossingsFor(obs, date, targetAlt, sunAltitudeDeg)
}

// DaylightHours returns the duration between sunrise and sunset in
// hours. ErrNoRiseNoSet passes through for polar dates.
func DaylightHours(obs Coordinates, date time.Time) (float64, error) {
	rs, err := RiseSetAt(Sun, obs, date)
	if err != nil {
		return 0, err
	}
	return rs.Set.Sub(rs.Rise).Hours(), nil
}

// GoldenHourAt returns the golden hour windows for the observer on the
// local calendar date: the Sun's center between -4 and +6 degrees,
// climbing in the morning and descending in the evening.
func GoldenHourAt(obs Coordinates, date time.Time) (DaylightWindows, error) {
	return bandWindows(obs, date, -4.0, 6.0)
}

// BlueHourAt returns the blue hour windows: the Sun's center between
// -6 and -4 degrees.
func BlueHourAt(obs Coordinates, date time.Time) (DaylightWindows, error) {
	return bandWindows(obs, date, -6.0, -4.0)
}

// sunAltitudeDeg is the altitude function the crossing scanner samples
// for solar events. Geometric altitude; the horizon thresholds already
// fold refraction in.
func sunAltitudeDeg(obs Coordinates) scan.AltitudeFunc {
	return func(t time.Time) float64 {
		return astrotime.Rad2Deg(SunPositionAt(t, obs).AltitudeRad)
	}
}

// moonAltitudeDeg samples the Moon's apparent (refracted) altitude.
func moonAltitudeDeg(obs Coordinates) scan.AltitudeFunc {
	return func(t time.Time) float64 {
		return astrotime.Rad2Deg(MoonPositionAt(t, obs).AltitudeRad)
	}
}

// crossingsFor finds the upward and downward crossings of targetAlt
// during the local calendar day of date.
func crossingsFor(obs Coordinates, date time.Time, targetAlt float64, altFor func(Coordinates) scan.AltitudeFunc) (RiseSet, error) {
	loc := date.Location()
	year, month, day := date.Date()

	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)

	f := altFor(obs)

	up := scan.FindCrossing(f, start, end, targetAlt, scan.Rising, scanSamples, scanTol)
	down := scan.FindCrossing(f, start, end, targetAlt, scan.Setting, scanSamples, scanTol)

	if !up.OK && !down.OK {
		return RiseSet{}, ErrNoRiseNoSet
	}

	var rs RiseSet
	if up.OK {
		rs.Rise = withLocalDate(up.Time.In(loc), year, month, day)
	}
	if down.OK {
		rs.Set = withLocalDate(down.Time.In(loc), year, month, day)
	}
	return rs, nil
}

// bandWindows builds the morning and evening windows between the upward
// and downward crossings of two altitudes.
func bandWindows(obs Coordinates, date time.Time, lowAlt, highAlt float64) (DaylightWindows, error) {
	low, errLow := crossingsFor(obs, date, lowAlt, sunAltitudeDeg)
	high, errHigh := crossingsFor(obs, date, highAlt, sunAltitudeDeg)

	var w DaylightWindows

	// Morning: Sun climbing from lowAlt to highAlt.
	if errLow == nil && errHigh == nil && !low.Rise.IsZero() && !high.Rise.IsZero() && high.Rise.After(low.Rise) {
		w.Morning = Window{Start: low.Rise, End: high.Rise}
		w.HasMorning = true
	}

	// Evening: Sun descending from highAlt to lowAlt.
	if errLow == nil && errHigh == nil && !low.Set.IsZero() && !high.Set.IsZero() && low.Set.After(high.Set) {
		w.Evening = Window{Start: high.Set, End: low.Set}
		w.HasEvening = true
	}

	if !w.HasMorning && !w.HasEvening {
		return DaylightWindows{}, ErrNoRiseNoSet
	}
	return w, nil
}

// withLocalDate returns a copy of t with its calendar date forced to
// (year, month, day), keeping the clock time and location. Event
// queries use it so a crossing found just over a UTC day boundary still
// reports on the requested local date.
func withLocalDate(t time.Time, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
