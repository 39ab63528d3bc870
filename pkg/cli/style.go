package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for terminal summaries.
type Theme struct {
	Primary lipgloss.Color // Title and label color
	Dim     lipgloss.Color // Border and note color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Rule  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Primary),
		Value: lipgloss.NewStyle(),
		Rule:  lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Row is one label/value line of a Summary.
type Row struct {
	Label string
	Value string
}

// Summary renders a titled block of aligned label/value rows:
//
//	byte-stream
//	───────────
//	capacity    4.0 KiB
//	elapsed     1.2ms
type Summary struct {
	Styles Styles
	Title  string
	Rows   []Row
}

// Render renders the summary to a string ending in a newline.
func (s Summary) Render() string {
	width := 0
	for _, r := range s.Rows {
		width = max(width, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	b.WriteString(s.Styles.Title.Render(s.Title))
	b.WriteByte('\n')
	b.WriteString(s.Styles.Rule.Render(strings.Repeat("─", max(lipgloss.Width(s.Title), 1))))
	b.WriteByte('\n')
	for _, r := range s.Rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.Label)+2)
		b.WriteString(s.Styles.Label.Render(r.Label))
		b.WriteString(pad)
		b.WriteString(s.Styles.Value.Render(r.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer so a Summary can be passed to Output.
func (s Summary) String() string {
	return s.Render()
}
