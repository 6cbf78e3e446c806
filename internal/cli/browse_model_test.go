package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/erca/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newBrowseModel(context.Background(), app), teatest.WithSize(120, 60))
	d.DrainInit()
	return d
}

func browseState(d *teatest.Driver) browseModel {
	return d.Model.(browseModel)
}

func TestBrowse_StartsAtDefaultGrade(t *testing.T) {
	d := newBrowseDriver(t, testApp(t))

	view := stripANSI(d.View())
	assert.Contains(t, view, "7 EGB")
	assert.Contains(t, view, "EGB Media")
	assert.Contains(t, view, "M.3.2.6")
	assert.NotContains(t, view, "M.1.9.9")
}

func TestBrowse_StepsThroughGrades(t *testing.T) {
	d := newBrowseDriver(t, testApp(t))

	d.Press(tea.KeyRight)
	assert.Equal(t, "8 EGB", browseState(d).current().label())
	assert.Contains(t, stripANSI(d.View()), "M.5.1.12")

	for range 20 {
		d.Press(tea.KeyRight)
	}
	assert.Equal(t, "3 BGU", browseState(d).current().label())

	for range 20 {
		d.PressKey('h')
	}
	assert.Equal(t, "1 EGB", browseState(d).current().label())
}

func TestBrowse_TopicRanksSkills(t *testing.T) {
	d := newBrowseDriver(t, testApp(t))

	d.PressKey('/')
	require.True(t, browseState(d).topic.Focused())
	d.Type("fracciones")
	d.PressEnter()
	require.False(t, browseState(d).topic.Focused())

	view := stripANSI(d.View())
	assert.Contains(t, view, `Topic: "fracciones"`)
	assert.Contains(t, view, "▶")

	// Letters typed while the topic has focus must not quit.
	assert.False(t, d.Quitting)
}

func TestBrowse_PlanPreviewAndCopy(t *testing.T) {
	app := testApp(t)
	var copied string
	app.CopyText = func(s string) error {
		copied = s
		return nil
	}
	d := newBrowseDriver(t, app)

	d.PressKey('p')
	assert.Contains(t, stripANSI(d.View()), "1) DATOS INFORMATIVOS")

	d.PressKey('c')
	assert.Contains(t, copied, "- Grado/Curso: 7 EGB")
	assert.Contains(t, stripANSI(d.View()), "plan copied")

	d.PressKey('p')
	assert.NotContains(t, stripANSI(d.View()), "1) DATOS INFORMATIVOS")
}

func TestBrowse_Quit(t *testing.T) {
	d := newBrowseDriver(t, testApp(t))

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestBrowseCmd_NeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}
