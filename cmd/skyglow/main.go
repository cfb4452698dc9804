// Command skyglow prints Sun/Moon position, illumination, and phase for
// an observer, or runs a live terminal dashboard.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/pthorsen/skyglow"
	"github.com/pthorsen/skyglow/internal/logging"
	"github.com/pthorsen/skyglow/internal/ui"
)

func main() {
	log.SetFlags(0)

	// If no args or first arg is a flag, run the default sky-snapshot
	// mode. Otherwise the first arg is a subcommand.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runSky(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "times":
		runTimes(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `skyglow – sun & moon position, illumination, and phase

Usage:
  skyglow [flags]          # current sky snapshot (default mode)
  skyglow times [flags]    # rise/set, twilight, golden/blue hour table
  skyglow watch [flags]    # live terminal dashboard

Common flags:
  -lat float       latitude in degrees (north positive)
  -lon float       longitude in degrees (east positive)
  -config string   YAML file with named site presets
  -site string     name of a site preset from -config
  -time string     instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (default now)
  -tz string       IANA time zone for -time and output (default UTC)

Run a subcommand with -h for its full flag list.
`)
}

// observerFlags is the flag set shared by every mode.
type observerFlags struct {
	lat      *float64
	lon      *float64
	cfgPath  *string
	site     *string
	timeStr  *string
	tzName   *string
	logLevel *string
}

func addObserverFlags(fs *flag.FlagSet) *observerFlags {
	return &observerFlags{
		lat:      fs.Float64("lat", 0, "latitude in degrees (north positive)"),
		lon:      fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)"),
		cfgPath:  fs.String("config", "", "YAML file with named site presets"),
		site:     fs.String("site", "", "site preset name from -config"),
		timeStr:  fs.String("time", "", "instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (default: now)"),
		tzName:   fs.String("tz", "UTC", "IANA time zone name (e.g. America/Phoenix)"),
		logLevel: fs.String("log-level", "info", "log level (debug, info, warn, error)"),
	}
}

// sitesConfig is the YAML preset file shape:
//
//	sites:
//	  home: {lat: 40.7128, lon: -74.0060}
//	  cabin: {lat: 59.33, lon: 18.07}
type sitesConfig struct {
	Sites map[string]struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"sites"`
}

// resolve turns the parsed flags into an observer, instant, and logger.
func (of *observerFlags) resolve() (skyglow.Coordinates, time.Time, *logging.Logger) {
	logger := logging.New(logging.ParseLevel(*of.logLevel))

	obs := skyglow.Coordinates{Lat: *of.lat, Lon: *of.lon}

	if *of.site != "" {
		if *of.cfgPath == "" {
			log.Fatalf("-site %q given without -config", *of.site)
		}
		data, err := os.ReadFile(*of.cfgPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		var cfg sitesConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("parse config %s: %v", *of.cfgPath, err)
		}
		preset, ok := cfg.Sites[*of.site]
		if !ok {
			log.Fatalf("site %q not found in %s", *of.site, *of.cfgPath)
		}
		obs = skyglow.Coordinates{Lat: preset.Lat, Lon: preset.Lon}
		logger.Debug("using site %q: lat=%.4f lon=%.4f", *of.site, obs.Lat, obs.Lon)
	} else if obs.Lat == 0 && obs.Lon == 0 {
		logger.Warn("lat=0 lon=0 (Gulf of Guinea); use -lat/-lon or -site")
	}

	loc, err := time.LoadLocation(*of.tzName)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", *of.tzName, err)
	}

	t := time.Now().In(loc)
	if *of.timeStr != "" {
		layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}
		var parseErr error
		for _, layout := range layouts {
			t, parseErr = time.ParseInLocation(layout, *of.timeStr, loc)
			if parseErr == nil {
				break
			}
		}
		if parseErr != nil {
			log.Fatalf("could not parse -time %q: %v", *of.timeStr, parseErr)
		}
	}

	return obs, t, logger
}

// ---------------------
// Default mode: sky snapshot
// ---------------------

func runSky(args []string) {
	fs := flag.NewFlagSet("skyglow", flag.ExitOnError)
	of := addObserverFlags(fs)
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	obs, t, _ := of.resolve()

	if *jsonOut {
		printSkyJSON(obs, skyglow.SkyAt(t, obs))
		return
	}
	printSkyText(obs, t)
}

func printSkyText(obs skyglow.Coordinates, t time.Time) {
	sky := skyglow.SkyAt(t, obs)

	fmt.Printf("Sky at %s for lat=%.4f lon=%.4f\n\n", sky.Time.Format(time.RFC3339), obs.Lat, obs.Lon)
	fmt.Printf("Sun    az %7.2f°  elev %7.2f°  %s\n",
		sky.Sun.AzimuthDeg, sky.Sun.ElevationDeg, sky.Sun.Phase)
	fmt.Printf("Moon   az %7.2f°  elev %7.2f°  %s\n",
		sky.Moon.AzimuthDeg, sky.Moon.ElevationDeg, sky.Moon.Phase)
	fmt.Printf("       dist %.0f km, %.1f%% illuminated\n",
		sky.Moon.DistanceKm, sky.Moon.Illumination*100)
}

type skyJSON struct {
	Time      time.Time                  `json:"time"`
	Latitude  float64                    `json:"latitude"`
	Longitude float64                    `json:"longitude"`
	Sun       skyJSONBody                `json:"sun"`
	Moon      skyJSONBody                `json:"moon"`
	MoonExtra map[string]float64         `json:"moonDetail"`
	Vectors   map[string]skyglow.Vector3 `json:"lightVectors"`
}

type skyJSONBody struct {
	AzimuthDeg   float64 `json:"azimuthDeg"`
	ElevationDeg float64 `json:"elevationDeg"`
	Phase        string  `json:"phase"`
}

func printSkyJSON(obs skyglow.Coordinates, sky skyglow.Sky) {
	deg2rad := func(d float64) float64 { return d * math.Pi / 180 }

	out := skyJSON{
		Time:      sky.Time,
		Latitude:  obs.Lat,
		Longitude: obs.Lon,
		Sun: skyJSONBody{
			AzimuthDeg:   sky.Sun.AzimuthDeg,
			ElevationDeg: sky.Sun.ElevationDeg,
			Phase:        sky.Sun.Phase.String(),
		},
		Moon: skyJSONBody{
			AzimuthDeg:   sky.Moon.AzimuthDeg,
			ElevationDeg: sky.Moon.ElevationDeg,
			Phase:        sky.Moon.Phase.String(),
		},
		MoonExtra: map[string]float64{
			"distanceKm":   sky.Moon.DistanceKm,
			"illumination": sky.Moon.Illumination,
		},
		Vectors: map[string]skyglow.Vector3{
			"sun":  skyglow.DirectionVector(deg2rad(sky.Sun.AzimuthDeg), deg2rad(sky.Sun.ElevationDeg)),
			"moon": skyglow.DirectionVector(deg2rad(sky.Moon.AzimuthDeg), deg2rad(sky.Moon.ElevationDeg)),
		},
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}

// ---------------------
// times subcommand
// ---------------------

func runTimes(args []string) {
	fs := flag.NewFlagSet("times", flag.ExitOnError)
	of := addObserverFlags(fs)
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	obs, t, logger := of.resolve()

	fmt.Printf("Events for lat=%.4f lon=%.4f on %s (%s)\n\n",
		obs.Lat, obs.Lon, t.Format("2006-01-02"), t.Location())

	printRiseSet := func(label string, rs skyglow.RiseSet, err error) {
		if err != nil {
			fmt.Printf("%-20s %v\n", label, err)
			return
		}
		fmt.Printf("%-20s rise %s   set %s\n", label,
			fmtClock(rs.Rise), fmtClock(rs.Set))
	}

	sunRS, err := skyglow.RiseSetAt(skyglow.Sun, obs, t)
	printRiseSet("Sun", sunRS, err)
	moonRS, err := skyglow.RiseSetAt(skyglow.Moon, obs, t)
	printRiseSet("Moon", moonRS, err)

	for _, tw := range []struct {
		name string
		kind skyglow.TwilightKind
	}{
		{"Civil twilight", skyglow.TwilightCivil},
		{"Nautical twilight", skyglow.TwilightNautical},
		{"Astro twilight", skyglow.TwilightAstronomical},
	} {
		rs, err := skyglow.TwilightAt(obs, t, tw.kind)
		printRiseSet(tw.name, rs, err)
	}

	printWindows := func(label string, w skyglow.DaylightWindows, err error) {
		if err != nil {
			fmt.Printf("%-20s %v\n", label, err)
			return
		}
		var parts []string
		if w.HasMorning {
			parts = append(parts, fmt.Sprintf("morning %s–%s", fmtClock(w.Morning.Start), fmtClock(w.Morning.End)))
		}
		if w.HasEvening {
			parts = append(parts, fmt.Sprintf("evening %s–%s", fmtClock(w.Evening.Start), fmtClock(w.Evening.End)))
		}
		fmt.Printf("%-20s %s\n", label, strings.Join(parts, "   "))
	}

	gh, err := skyglow.GoldenHourAt(obs, t)
	printWindows("Golden hour", gh, err)
	bh, err := skyglow.BlueHourAt(obs, t)
	printWindows("Blue hour", bh, err)

	if hours, err := skyglow.DaylightHours(obs, t); err == nil {
		fmt.Printf("\nDaylight: %.2f hours\n", hours)
	} else {
		logger.Debug("daylight hours: %v", err)
	}
}

func fmtClock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

// ---------------------
// watch subcommand
// ---------------------

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	of := addObserverFlags(fs)
	refresh := fs.Duration("refresh", time.Second, "dashboard refresh interval")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	obs, t, logger := of.resolve()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Not a TTY: degrade to a one-shot text snapshot.
		logger.Debug("stdout is not a terminal, printing one snapshot")
		printSkyText(obs, t)
		return
	}

	site := *of.site
	if site == "" {
		site = "observer"
	}

	p := tea.NewProgram(ui.New(obs, site, *refresh), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
