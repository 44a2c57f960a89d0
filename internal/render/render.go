// Package render draws parsed schedules as bordered key/value tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/patrickspencer/croninfo/internal/crontab"
)

// ISOLayout is ISO-8601 with a numeric UTC offset, "+00:00" included.
const ISOLayout = "2006-01-02T15:04:05-07:00"

const (
	DefaultWidth = 80
	minWidth     = 40
	labelWidth   = 20
	title        = "Cron Expression"
)

// Report is everything one table shows.
type Report struct {
	Expression string
	Schedule   *crontab.Schedule
	Next       time.Time
	In         string
}

// Renderer holds the styles for one output stream.
type Renderer struct {
	width  int
	lg     *lipgloss.Renderer
	label  lipgloss.Style
	frame  lipgloss.Style
	header lipgloss.Style
	errTag lipgloss.Style
}

// New returns a Renderer for w. color is "auto", "always" or "never";
// width below the minimum is raised to it.
func New(w io.Writer, width int, color string) *Renderer {
	lg := lipgloss.NewRenderer(w)
	switch color {
	case "never":
		lg.SetColorProfile(termenv.Ascii)
	case "always":
		lg.SetColorProfile(termenv.ANSI256)
	}
	if width < minWidth {
		width = minWidth
	}
	return &Renderer{
		width:  width,
		lg:     lg,
		label:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		frame:  lg.NewStyle().Foreground(lipgloss.Color("8")),
		header: lg.NewStyle().Bold(true),
		errTag: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// Rows returns the label/value pairs of a report in display order.
func Rows(r Report) [][2]string {
	s := r.Schedule
	return [][2]string{
		{"Minute", joinValues(s.Minute())},
		{"Hour", joinValues(s.Hour())},
		{"Day of Month", joinValues(s.MonthDay())},
		{"Month", joinValues(s.Month())},
		{"Day of Week", joinValues(s.WeekDay())},
		{"TZ", s.Location().String()},
		{"Command", s.Command()},
		{"Next Scheduled Run", fmt.Sprintf("%s (in %s)", r.Next.Format(ISOLayout), r.In)},
	}
}

func joinValues(f crontab.Field) string {
	values := f.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Box renders the report as a rounded table titled "Cron Expression" with
// the raw expression in the bottom border.
func (p *Renderer) Box(r Report) string {
	border := lipgloss.RoundedBorder()
	inner := p.width - 4
	wrap := p.lg.NewStyle().Width(inner)

	var b strings.Builder
	b.WriteString(p.edge(border.TopLeft, border.Top, border.TopRight, p.header.Render(title)))
	b.WriteByte('\n')
	for _, row := range Rows(r) {
		text := p.label.Render(fmt.Sprintf("%-*s", labelWidth, row[0])) + " " + row[1]
		for _, line := range strings.Split(wrap.Render(text), "\n") {
			if pad := inner - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			b.WriteString(p.frame.Render(border.Left) + " " + line + " " + p.frame.Render(border.Right))
			b.WriteByte('\n')
		}
	}
	caption := ansi.Truncate(r.Expression, p.width-6, "…")
	b.WriteString(p.edge(border.BottomLeft, border.Bottom, border.BottomRight, caption))
	return b.String()
}

// edge draws a horizontal border line with caption embedded after the
// corner, e.g. "╭─ caption ─────╮".
func (p *Renderer) edge(left, fill, right, caption string) string {
	head := left + fill + " "
	tail := " "
	n := p.width - lipgloss.Width(head) - lipgloss.Width(caption) - lipgloss.Width(tail) - lipgloss.Width(right)
	if n < 0 {
		n = 0
	}
	return p.frame.Render(head) + caption + p.frame.Render(tail+strings.Repeat(fill, n)+right)
}

// Error renders a one-line failure message.
func (p *Renderer) Error(msg string) string {
	return p.errTag.Render("Error:") + " " + msg
}
