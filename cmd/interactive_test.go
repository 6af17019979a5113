package cmd

import (
	"bytes"
	"testing"

	"tubestatus/data/model"
	"tubestatus/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBrowser(t *testing.T) statusBrowser {
	t.Helper()
	entries := []model.LineStatusEntry{
		{Name: "Victoria", LineStatuses: []model.StatusRecord{{StatusSeverityDescription: "Good Service"}}},
		{Name: "Northern", LineStatuses: []model.StatusRecord{{
			StatusSeverityDescription: "Minor Delays",
			Reason:                    "Northern Line - Reason: Signal failure. Good service otherwise.",
		}}},
	}

	lines := make([]report.Line, 0, len(entries))
	for _, e := range entries {
		line, err := report.Describe(e, report.Options{OnlyOneSentence: true})
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return newStatusBrowser(lines, report.NewProfileRenderer(&bytes.Buffer{}, termenv.Ascii))
}

func press(t *testing.T, m statusBrowser, msg tea.KeyMsg) (statusBrowser, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	browser, ok := next.(statusBrowser)
	require.True(t, ok)
	return browser, cmd
}

func TestStatusBrowserView(t *testing.T) {
	view := testBrowser(t).View()
	assert.Contains(t, view, "London Underground status")
	assert.Contains(t, view, "> Victoria: Good Service")
	assert.Contains(t, view, "  Northern:Signal failure")
	assert.NotContains(t, view, "Good service otherwise")
}

func TestStatusBrowserNavigation(t *testing.T) {
	m := testBrowser(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, m.cursor)
}

func TestStatusBrowserExpandsReason(t *testing.T) {
	m := testBrowser(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	expanded, _ := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, expanded.View(), "Minor Delays - Northern Line - Reason: Signal failure. Good service otherwise.")
	assert.NotContains(t, m.View(), "Good service otherwise", "toggling must not change the previous model")

	collapsed, _ := press(t, expanded, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, collapsed.View(), "Good service otherwise")
}

func TestStatusBrowserQuit(t *testing.T) {
	m, cmd := press(t, testBrowser(t), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestStatusBrowserEmpty(t *testing.T) {
	m := newStatusBrowser(nil, report.NewProfileRenderer(&bytes.Buffer{}, termenv.Ascii))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "No lines reported.")
}
