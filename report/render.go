package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer colors line names for a particular output.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer builds a renderer for w with the color profile detected from w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{lg: lipgloss.NewRenderer(w)}
}

// NewProfileRenderer builds a renderer for w that always uses p, whatever w is.
func NewProfileRenderer(w io.Writer, p termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(p)
	return &Renderer{lg: lg}
}

func (r *Renderer) nameStyle(l Line) lipgloss.Style {
	return r.lg.NewStyle().Foreground(lipgloss.Color(l.Color.Hex()))
}

// Format renders the row with the name in its line color and the rest in the
// terminal's default color.
func (r *Renderer) Format(l Line) string {
	return r.nameStyle(l).Render(l.Name) + l.Separator + l.Summary
}

// Style exposes the underlying lipgloss renderer for callers composing
// larger views.
func (r *Renderer) Style() lipgloss.Style {
	return r.lg.NewStyle()
}
