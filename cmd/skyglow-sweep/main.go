// Command skyglow-sweep samples Sun/Moon snapshots over a time range
// and writes them as CSV, with a summary of the observed extremes.
// Useful for plotting a day's lighting curve or eyeballing the model
// against a reference ephemeris.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/pthorsen/skyglow"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func main() {
	var (
		lat    = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon    = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		tzName = flag.String("tz", "UTC", "IANA time zone name for -date and output")
		dateS  = flag.String("date", "", "start date YYYY-MM-DD (default: today)")
		days   = flag.Int("days", 1, "number of days to sweep")
		stepS  = flag.Duration("step", 10*time.Minute, "sample interval")
		outCSV = flag.String("out", "-", "output CSV path (- for stdout)")
	)
	flag.Parse()

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", *tzName, err)
	}

	var start time.Time
	if *dateS == "" {
		now := time.Now().In(loc)
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	} else {
		start, err = time.ParseInLocation("2006-01-02", *dateS, loc)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *dateS, err)
		}
	}
	end := start.AddDate(0, 0, *days)

	if *stepS <= 0 {
		log.Fatalf("-step must be positive, got %v", *stepS)
	}

	out := os.Stdout
	if *outCSV != "-" {
		f, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("create %s: %v", *outCSV, err)
		}
		defer f.Close()
		out = f
	}

	obs := skyglow.Coordinates{Lat: *lat, Lon: *lon}

	w := csv.NewWriter(out)
	header := []string{
		"time",
		"sun_az_deg", "sun_elev_deg", "sun_phase",
		"moon_az_deg", "moon_elev_deg", "moon_dist_km", "moon_illum", "moon_phase",
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("write header: %v", err)
	}

	var sunElev, moonElev, illum stats

	for t := start; t.Before(end); t = t.Add(*stepS) {
		sky := skyglow.SkyAt(t, obs)

		sunElev.add(sky.Sun.ElevationDeg)
		moonElev.add(sky.Moon.ElevationDeg)
		illum.add(sky.Moon.Illumination)

		row := []string{
			t.Format(time.RFC3339),
			fmt.Sprintf("%.3f", sky.Sun.AzimuthDeg),
			fmt.Sprintf("%.3f", sky.Sun.ElevationDeg),
			sky.Sun.Phase.String(),
			fmt.Sprintf("%.3f", sky.Moon.AzimuthDeg),
			fmt.Sprintf("%.3f", sky.Moon.ElevationDeg),
			fmt.Sprintf("%.0f", sky.Moon.DistanceKm),
			fmt.Sprintf("%.4f", sky.Moon.Illumination),
			sky.Moon.Phase.String(),
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("write row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("flush CSV: %v", err)
	}

	fmt.Fprintf(os.Stderr, "sun elevation:  min %7.2f°  max %7.2f°  avg %7.2f°  (%d samples)\n",
		sunElev.min, sunElev.max, sunElev.avg(), sunElev.count)
	fmt.Fprintf(os.Stderr, "moon elevation: min %7.2f°  max %7.2f°  avg %7.2f°\n",
		moonElev.min, moonElev.max, moonElev.avg())
	fmt.Fprintf(os.Stderr, "illumination:   min %7.3f   max %7.3f   avg %7.3f\n",
		illum.min, illum.max, illum.avg())
}
