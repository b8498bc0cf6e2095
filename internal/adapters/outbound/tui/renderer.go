package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stockroom/stockroom/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	recordStyle  = lipgloss.NewStyle().Foreground(fg)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	infoStyle    = lipgloss.NewStyle().Foreground(info)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	promptStyle  = lipgloss.NewStyle().Foreground(fg)
	separatorLen = 48
)

// MenuEntry is one selectable line of the main menu.
type MenuEntry struct {
	Key   string
	Label string
}

// RenderMenu draws the boxed main menu.
func RenderMenu(title string, entries []MenuEntry) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s. %s", keyStyle.Render(e.Key), recordStyle.Render(e.Label))
	}
	return boxStyle.Render(b.String()) + "\n"
}

// RenderRecords lists records in the given order, one display form per line.
// An empty title renders the lines alone.
func RenderRecords(title string, records []domain.Record, currency string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(strings.Repeat("─", separatorLen)))
		b.WriteString("\n")
	}
	for _, r := range records {
		b.WriteString(recordStyle.Render(r.Display(currency)))
		b.WriteString("\n")
	}
	if title != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d product(s)", len(records))))
		b.WriteString("\n")
	}
	return b.String()
}

func RenderPrompt(prompt string) string { return promptStyle.Render(prompt) }

func RenderInfo(msg string) string    { return infoStyle.Render(msg) + "\n" }
func RenderSuccess(msg string) string { return passStyle.Render(msg) + "\n" }
func RenderWarning(msg string) string { return warnStyle.Render(msg) + "\n" }
func RenderError(msg string) string   { return failStyle.Render(msg) + "\n" }
