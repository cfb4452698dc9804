package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pthorsen/skyglow"
)

// Panel colors. Sun band colors shade from night blue up to daylight
// gold; moon accents stay cool.
const (
	colorDay        = "#FFD700" // gold
	colorCivil      = "#FF8C42" // sunset orange
	colorNautical   = "#5D7CBA" // steel blue
	colorAstro      = "#3B4A7A" // deep blue
	colorNight      = "#2A2A4A" // near-black blue
	colorMoon       = "#D0D8FF" // pale moonlight
	colorLabel      = "135"     // purple labels
	colorDim        = "60"
	colorBelowGlyph = "240"
)

const (
	glyphSun       = '☀'
	glyphMoonAbove = '☾'
)

// moonGlyphs maps each phase to its conventional disk glyph.
var moonGlyphs = map[skyglow.MoonPhase]string{
	skyglow.NewMoon:        "🌑",
	skyglow.WaxingCrescent: "🌒",
	skyglow.FirstQuarter:   "🌓",
	skyglow.WaxingGibbous:  "🌔",
	skyglow.FullMoon:       "🌕",
	skyglow.WaningGibbous:  "🌖",
	skyglow.LastQuarter:    "🌗",
	skyglow.WaningCrescent: "🌘",
}

// MoonGlyph returns the disk glyph for a phase.
func MoonGlyph(p skyglow.MoonPhase) string {
	if g, ok := moonGlyphs[p]; ok {
		return g
	}
	return "🌑"
}

// sunPhaseColor returns the accent color for a twilight band.
func sunPhaseColor(p skyglow.SunPhase) string {
	switch p {
	case skyglow.Day:
		return colorDay
	case skyglow.CivilTwilight:
		return colorCivil
	case skyglow.NauticalTwilight:
		return colorNautical
	case skyglow.AstronomicalTwilight:
		return colorAstro
	default:
		return colorNight
	}
}

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel)).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorDim)).
			Padding(0, 1)
)

// RenderSunPanel renders the Sun card: position and twilight band.
func RenderSunPanel(p skyglow.SunProperties) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(sunPhaseColor(p.Phase)))

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%c Sun", glyphSun)))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Azimuth   %7.2f°\n", p.AzimuthDeg))
	b.WriteString(fmt.Sprintf("Elevation %7.2f°\n", p.ElevationDeg))
	b.WriteString(dimStyle.Render("Phase     ") + accent.Render(p.Phase.String()))

	return panelBorder.Render(b.String())
}

// RenderMoonPanel renders the Moon card: position, distance, phase, and
// an illumination bar.
func RenderMoonPanel(p skyglow.MoonProperties) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoon))

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%c Moon", glyphMoonAbove)))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Azimuth   %7.2f°\n", p.AzimuthDeg))
	b.WriteString(fmt.Sprintf("Elevation %7.2f°\n", p.ElevationDeg))
	b.WriteString(fmt.Sprintf("Distance  %7.0f km\n", p.DistanceKm))
	b.WriteString(dimStyle.Render("Phase     ") + accent.Render(MoonGlyph(p.Phase)+" "+p.Phase.String()))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render("Lit       ") + RenderIlluminationBar(p.Illumination, 12) +
		fmt.Sprintf(" %3.0f%%", p.Illumination*100))

	return panelBorder.Render(b.String())
}

// RenderIlluminationBar renders a filled/empty block bar for an
// illuminated fraction in [0, 1].
func RenderIlluminationBar(fraction float64, width int) string {
	if width < 1 {
		width = 1
	}
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoon)).Render(bar)
}

// RenderHorizonStrip renders a one-line compass strip placing the Sun
// and Moon glyphs at their azimuths. Bodies below the horizon render
// dimmed. The ruler underneath marks the cardinal directions.
func RenderHorizonStrip(sun skyglow.SunProperties, moon skyglow.MoonProperties, width int) string {
	if width < 16 {
		width = 16
	}

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}

	styles := map[int]lipgloss.Style{}

	place := func(azDeg, elevDeg float64, glyph rune, color string) {
		col := int(azDeg / 360.0 * float64(width))
		if col < 0 {
			col = 0
		} else if col >= width {
			col = width - 1
		}
		row[col] = glyph
		if elevDeg < 0 {
			styles[col] = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBelowGlyph))
		} else {
			styles[col] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		}
	}

	// Moon first so a close Sun wins the cell.
	place(moon.AzimuthDeg, moon.ElevationDeg, glyphMoonAbove, colorMoon)
	place(sun.AzimuthDeg, sun.ElevationDeg, glyphSun, sunPhaseColor(sun.Phase))

	var b strings.Builder
	for i, r := range row {
		if st, ok := styles[i]; ok {
			b.WriteString(st.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String() + "\n" + dimStyle.Render(compassRuler(width))
}

// compassRuler builds a width-length line with N/E/S/W at their azimuth
// columns.
func compassRuler(width int) string {
	ruler := []rune(strings.Repeat("·", width))
	for deg, mark := range map[int]rune{0: 'N', 90: 'E', 180: 'S', 270: 'W'} {
		col := deg * width / 360
		if col < width {
			ruler[col] = mark
		}
	}
	return string(ruler)
}
