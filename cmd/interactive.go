package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"tubestatus/report"
	"tubestatus/tfl"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// statusBrowser shows one fetched report and lets the user expand the full
// reason behind each line. It never refetches.
type statusBrowser struct {
	lines    []report.Line
	renderer *report.Renderer
	cursor   int
	expanded []bool
	quitting bool
}

func newStatusBrowser(lines []report.Line, renderer *report.Renderer) statusBrowser {
	return statusBrowser{
		lines:    lines,
		renderer: renderer,
		expanded: make([]bool, len(lines)),
	}
}

func (m statusBrowser) Init() tea.Cmd {
	return nil
}

func (m statusBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.lines)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.lines) > 0 {
			expanded := make([]bool, len(m.expanded))
			copy(expanded, m.expanded)
			expanded[m.cursor] = !expanded[m.cursor]
			m.expanded = expanded
		}
	}

	return m, nil
}

func (m statusBrowser) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.Style().
		Bold(true).
		Padding(1, 0)

	cursorStyle := m.renderer.Style().
		Bold(true)

	reasonStyle := m.renderer.Style().
		Foreground(lipgloss.Color("#888888")).
		PaddingLeft(4)

	helpStyle := m.renderer.Style().
		Foreground(lipgloss.Color("#888888")).
		Padding(1, 0)

	var b strings.Builder
	b.WriteString(titleStyle.Render("London Underground status"))
	b.WriteString("\n")

	if len(m.lines) == 0 {
		b.WriteString("No lines reported.\n")
	}
	for i, line := range m.lines {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + m.renderer.Format(line) + "\n")

		if m.expanded[i] {
			detail := line.Severity
			if line.Reason != "" {
				detail += " - " + line.Reason
			}
			b.WriteString(reasonStyle.Render(detail) + "\n")
		}
	}

	controls := `↑/K    - Previous line
↓/J    - Next line
ENTER  - Show or hide the full reason
Q      - Quit`
	b.WriteString(helpStyle.Render(controls))
	return b.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runInteractive(ctx context.Context, client *tfl.Client, out io.Writer, opts report.Options, logger *log.Logger) error {
	if !isTerminal(out) {
		return errors.New("--interactive needs stdout to be a terminal")
	}

	renderer := report.NewRenderer(out)
	lines, err := report.NewReporter(client, renderer, out, opts, logger).Collect(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newStatusBrowser(lines, renderer), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running status browser")
	}
	return nil
}
