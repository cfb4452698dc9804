package skyglow_test

import (
	"math"
	"testing"
	"time"

	"github.com/pthorsen/skyglow"
)

// The March 2000 equinox fell on 2000-03-20 07:35 UTC, so around local
// noon that day the Sun sits nearly overhead on the equator and almost
// due south from mid-northern latitudes. These anchor the azimuth
// reference (north, through east) and the altitude sign conventions.

func TestSunPropertiesAt_EquinoxEquator(t *testing.T) {
	obs := skyglow.Coordinates{Lat: 0, Lon: 0}
	tm := time.Date(2000, time.March, 20, 12, 0, 0, 0, time.UTC)

	p := skyglow.SunPropertiesAt(tm, obs)

	// Near the zenith. Azimuth is unstable this close to 90 degrees
	// altitude, so only the altitude is asserted.
	if p.ElevationDeg < 85 {
		t.Errorf("equator equinox noon elevation = %.2f, want > 85", p.ElevationDeg)
	}
	if p.Phase != skyglow.Day {
		t.Errorf("phase = %v, want Day", p.Phase)
	}
}

func TestSunPropertiesAt_EquinoxMidLatitude(t *testing.T) {
	obs := skyglow.Coordinates{Lat: 40, Lon: 0}
	// Local apparent noon on the Greenwich meridian that day is about
	// 12:07 UTC (equation of time).
	tm := time.Date(2000, time.March, 20, 12, 7, 0, 0, time.UTC)

	p := skyglow.SunPropertiesAt(tm, obs)

	if math.Abs(p.AzimuthDeg-180) > 3 {
		t.Errorf("noon azimuth = %.2f, want ~180 (due south)", p.AzimuthDeg)
	}
	// Altitude at culmination is 90 - lat + dec, with dec ~ 0.1 degree.
	if p.ElevationDeg < 48 || p.ElevationDeg > 52 {
		t.Errorf("noon elevation = %.2f, want ~50", p.ElevationDeg)
	}
}

func TestSunPositionAt_MidnightBelowHorizon(t *testing.T) {
	obs := skyglow.Coordinates{Lat: 40, Lon: 0}
	tm := time.Date(2000, time.March, 20, 0, 7, 0, 0, time.UTC)

	pos := skyglow.SunPositionAt(tm, obs)
	if pos.AltitudeRad >= 0 {
		t.Errorf("midnight altitude = %v rad, want below horizon", pos.AltitudeRad)
	}
}

func TestMoonPositionAt_DistanceRange(t *testing.T) {
	obs := skyglow.Coordinates{Lat: 33.4484, Lon: -112.0740}

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		pos := skyglow.MoonPositionAt(start.AddDate(0, 0, i), obs)
		if pos.DistanceKm < 356000 || pos.DistanceKm > 407000 {
			t.Fatalf("day %d: DistanceKm = %v, outside plausible lunar range", i, pos.DistanceKm)
		}
	}
}

func TestDirectionVector(t *testing.T) {
	// Unit length for arbitrary directions.
	for az := 0.0; az < 2*math.Pi; az += math.Pi / 5 {
		for alt := -1.4; alt <= 1.4; alt += 0.35 {
			v := skyglow.DirectionVector(az, alt)
			norm := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
			if math.Abs(norm-1) > 1e-12 {
				t.Fatalf("DirectionVector(%v, %v) norm = %v", az, alt, norm)
			}
		}
	}

	// +Y is up.
	up := skyglow.DirectionVector(0.9, math.Pi/2)
	if math.Abs(up.Y-1) > 1e-12 {
		t.Errorf("zenith vector = %+v, want Y=1", up)
	}

	// Azimuth 0 on the horizon points at +Z.
	north := skyglow.DirectionVector(0, 0)
	if math.Abs(north.Z-1) > 1e-12 || math.Abs(north.X) > 1e-12 || math.Abs(north.Y) > 1e-12 {
		t.Errorf("horizon azimuth-0 vector = %+v, want (0, 0, 1)", north)
	}
}

func TestSkyAt_MatchesSingleBodyQueries(t *testing.T) {
	obs := skyglow.Coordinates{Lat: 40.7128, Lon: -74.0060}
	tm := time.Date(2025, time.August, 23, 21, 30, 0, 0, time.UTC)

	sky := skyglow.SkyAt(tm, obs)
	sun := skyglow.SunPropertiesAt(tm, obs)
	moon := skyglow.MoonPropertiesAt(tm, obs)

	const eps = 1e-9

	if math.Abs(sky.Sun.AzimuthDeg-sun.AzimuthDeg) > eps ||
		math.Abs(sky.Sun.ElevationDeg-sun.ElevationDeg) > eps ||
		sky.Sun.Phase != sun.Phase {
		t.Errorf("SkyAt sun %+v != SunPropertiesAt %+v", sky.Sun, sun)
	}

	if math.Abs(sky.Moon.AzimuthDeg-moon.AzimuthDeg) > eps ||
		math.Abs(sky.Moon.ElevationDeg-moon.ElevationDeg) > eps ||
		math.Abs(sky.Moon.DistanceKm-moon.DistanceKm) > eps ||
		math.Abs(sky.Moon.Illumination-moon.Illumination) > eps ||
		sky.Moon.Phase != moon.Phase {
		t.Errorf("SkyAt moon %+v != MoonPropertiesAt %+v", sky.Moon, moon)
	}

	if !sky.Time.Equal(tm) {
		t.Errorf("SkyAt time = %v, want %v", sky.Time, tm)
	}
}

func TestPositions_Deterministic(t *testing.T) {
	obs := skyglow.Coordinates{Lat: -33.8688, Lon: 151.2093}
	tm := time.Date(2025, time.February, 14, 4, 0, 0, 0, time.UTC)

	if a, b := skyglow.SunPositionAt(tm, obs), skyglow.SunPositionAt(tm, obs); a != b {
		t.Errorf("SunPositionAt not deterministic: %+v vs %+v", a, b)
	}
	if a, b := skyglow.MoonPositionAt(tm, obs), skyglow.MoonPositionAt(tm, obs); a != b {
		t.Errorf("MoonPositionAt not deterministic: %+v vs %+v", a, b)
	}
}

func TestAzimuthRange(t *testing.T) {
	// North-referenced azimuth from the raw south-referenced atan2 plus
	// pi lands in (0, 2pi); the degree snapshots stay in (0, 360).
	obs := skyglow.Coordinates{Lat: 51.5, Lon: -0.12}
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 96; i++ {
		tm := start.Add(time.Duration(i) * 15 * time.Minute)

		if az := skyglow.SunPositionAt(tm, obs).AzimuthRad; az < 0 || az > 2*math.Pi {
			t.Fatalf("sun azimuth %v rad out of range at %v", az, tm)
		}
		if az := skyglow.SunPropertiesAt(tm, obs).AzimuthDeg; az < 0 || az > 360 {
			t.Fatalf("sun azimuth %v deg out of range at %v", az, tm)
		}
	}
}
