package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/erca/internal/cli/formatter"
	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// gradeStop is one selectable (level, grade) pair.
type gradeStop struct {
	level domain.Level
	grade string
}

func (g gradeStop) label() string {
	return g.grade + " " + string(g.level)
}

func allGradeStops() []gradeStop {
	var stops []gradeStop
	for _, level := range []domain.Level{domain.LevelEGB, domain.LevelBGU} {
		for g := 1; g <= level.MaxGrade(); g++ {
			stops = append(stops, gradeStop{level: level, grade: strconv.Itoa(g)})
		}
	}
	return stops
}

type browseKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Topic  key.Binding
	Plan   key.Binding
	Copy   key.Binding
	Quit   key.Binding
	Accept key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev grade")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next grade")),
		Topic:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "topic")),
		Plan:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "plan/skills")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy plan")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept: key.NewBinding(key.WithKeys("enter", "esc")),
	}
}

func (k browseKeyMap) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Topic, k.Plan, k.Copy, k.Quit}
}

// browseModel steps through grades and shows the skills, topic ranking or
// full plan the engine would produce for each.
type browseModel struct {
	ctx   context.Context
	app   *App
	keys  browseKeyMap
	stops []gradeStop
	pos   int

	topic    textinput.Model
	body     viewport.Model
	showPlan bool
	status   string
	width    int
	height   int
	quitting bool
}

func newBrowseModel(ctx context.Context, app *App) browseModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "fracciones, geometría..."
	ti.CharLimit = 120

	vp := viewport.New(80, 12)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}

	m := browseModel{
		ctx:   ctx,
		app:   app,
		keys:  defaultBrowseKeys(),
		stops: allGradeStops(),
		topic: ti,
		body:  vp,
	}
	def := contract.NewPlanRequest()
	for i, s := range m.stops {
		if s.level == def.Level && s.grade == def.Grade {
			m.pos = i
		}
	}
	m.refresh()
	return m
}

func (m browseModel) current() gradeStop {
	return m.stops[m.pos]
}

func (m browseModel) selection() domain.Selection {
	req := contract.NewPlanRequest()
	stop := m.current()
	req.Level = stop.level
	req.Grade = stop.grade
	req.Topic = m.topic.Value()
	req.DurationTotal = m.app.Config.DefaultDuration
	return req.Normalize()
}

func (m *browseModel) refresh() {
	stop := m.current()
	res := m.app.Plans.Resolve(stop.level, stop.grade)

	var content string
	switch topic := strings.TrimSpace(m.topic.Value()); {
	case m.showPlan:
		content = formatter.PlanText(m.app.Plans.Build(m.ctx, m.selection()))
	case topic != "":
		content = formatter.FormatMatches(topic, m.app.Plans.Match(res.AvailableKey, topic))
	default:
		content = formatter.FormatSkills(m.app.Plans.Skills(res.AvailableKey))
	}
	m.body.SetContent(formatter.FormatResolution(res) + "\n" + content)
	m.body.GotoTop()
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-6, 3)
		m.topic.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.KeyMsg:
		if m.topic.Focused() {
			return m.updateTopic(msg)
		}
		return m.handleKey(msg)

	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}
	return m, nil
}

func (m browseModel) updateTopic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Accept) || msg.Type == tea.KeyCtrlC {
		m.topic.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.topic, cmd = m.topic.Update(msg)
	m.refresh()
	return m, cmd
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		if m.pos > 0 {
			m.pos--
			m.refresh()
		}
	case key.Matches(msg, m.keys.Next):
		if m.pos < len(m.stops)-1 {
			m.pos++
			m.refresh()
		}
	case key.Matches(msg, m.keys.Topic):
		m.showPlan = false
		m.refresh()
		cmd := m.topic.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Plan):
		m.showPlan = !m.showPlan
		m.refresh()
	case key.Matches(msg, m.keys.Copy):
		plan := m.app.Plans.Build(m.ctx, m.selection())
		if err := m.app.copyText(formatter.PlanText(plan)); err != nil {
			m.status = formatter.StyleRed.Render("copy failed: " + err.Error())
		} else {
			m.status = formatter.StyleGreen.Render("plan copied")
		}
	default:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", formatter.Header("ERCA"), formatter.Bold(m.current().label()))
	fmt.Fprintf(&b, "%s %s\n\n", formatter.Dim("Tema:"), m.topic.View())
	b.WriteString(m.body.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "  ")
	}
	b.WriteString(browseHelp(m.keys.help()))
	return b.String()
}

func browseHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}
