package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/replay"
)

// Styles holds the lipgloss styles for CLI output.
type Styles struct {
	Title lipgloss.Style
	Dim   lipgloss.Style
	OK    lipgloss.Style
	Error lipgloss.Style
	Time  lipgloss.Style
	Kinds map[replay.Kind]lipgloss.Style
}

// NewStyles creates the default styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:   lipgloss.NewStyle().Faint(true),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Time:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(9).Align(lipgloss.Right),
		Kinds: map[replay.Kind]lipgloss.Style{
			replay.KindInput:       lipgloss.NewStyle().Faint(true),
			replay.KindScrollStart: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			replay.KindScrollEnd:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			replay.KindDirection:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			replay.KindEndReached:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			replay.KindRefresh:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			replay.KindPull:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			replay.KindSticky:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			replay.KindAdvisory:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			replay.KindPanic:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

// Event renders one replay event as a log line.
func (s *Styles) Event(e replay.Event) string {
	kind, ok := s.Kinds[e.Kind]
	if !ok {
		kind = lipgloss.NewStyle()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Time.Render(e.At.String()),
		" ",
		kind.Width(13).Render(string(e.Kind)),
		e.Detail,
	)
}

var styles = NewStyles()
