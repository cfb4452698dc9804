// Package ui provides the live watch-mode dashboard using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthorsen/skyglow"
)

// TickMsg drives the once-per-interval recompute.
type TickMsg time.Time

// Model is the root Bubble Tea model: one observer, a ticking clock,
// and the sky snapshot derived from them.
type Model struct {
	obs      skyglow.Coordinates
	site     string
	interval time.Duration

	width  int
	height int
	ready  bool

	now time.Time
	sky skyglow.Sky

	// Rise/set lines are only recomputed when the local date changes;
	// they cost a day-long altitude scan each.
	eventsDate string
	sunEvents  string
	moonEvents string
}

// New creates a dashboard model for an observer. site is a display
// label only.
func New(obs skyglow.Coordinates, site string, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}
	now := time.Now()
	m := Model{obs: obs, site: site, interval: interval, now: now, sky: skyglow.SkyAt(now, obs)}
	m.refreshEvents()
	return m
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.now = time.Time(msg)
		m.sky = skyglow.SkyAt(m.now, m.obs)
		m.refreshEvents()
		return m, m.tickCmd()
	}

	return m, nil
}

// refreshEvents recomputes the rise/set summary lines if the local
// calendar date moved on.
func (m *Model) refreshEvents() {
	date := m.now.Format("2006-01-02")
	if date == m.eventsDate {
		return
	}
	m.eventsDate = date
	m.sunEvents = riseSetLine("Sun ", skyglow.Sun, m.obs, m.now)
	m.moonEvents = riseSetLine("Moon", skyglow.Moon, m.obs, m.now)
}

func riseSetLine(label string, body skyglow.Body, obs skyglow.Coordinates, date time.Time) string {
	rs, err := skyglow.RiseSetAt(body, obs, date)
	if err != nil {
		return fmt.Sprintf("%s  no rise/set today", label)
	}

	var parts []string
	if !rs.Rise.IsZero() {
		parts = append(parts, "Rise "+rs.Rise.Format("15:04"))
	}
	if !rs.Set.IsZero() {
		parts = append(parts, "Set "+rs.Set.Format("15:04"))
	}
	return fmt.Sprintf("%s  %s", label, strings.Join(parts, "   "))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := labelStyle.Render("skyglow")
	where := dimStyle.Render(fmt.Sprintf("%s  lat %.4f  lon %.4f", m.site, m.obs.Lat, m.obs.Lon))
	clock := dimStyle.Render(m.now.Format("2006-01-02 15:04:05 MST"))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", where, "  ", clock)

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderSunPanel(m.sky.Sun), " ", RenderMoonPanel(m.sky.Moon))

	stripWidth := m.width - 2
	if stripWidth < 16 {
		stripWidth = 16
	}
	strip := RenderHorizonStrip(m.sky.Sun, m.sky.Moon, stripWidth)

	events := dimStyle.Render(m.sunEvents + "    " + m.moonEvents)
	footer := dimStyle.Render("q quit")

	return strings.Join([]string{header, "", panels, "", strip, "", events, footer}, "\n")
}
