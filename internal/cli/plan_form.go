package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/erca/internal/cli/formatter"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ercaHuhTheme returns a huh theme matching the formatter palette.
func ercaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues holds form state as text until the form is submitted.
type planFormValues struct {
	Subject  string
	Level    string
	Grade    string
	Unit     string
	Topic    string
	Duration string
	Skill    string
}

func planDetailsForm(v *planFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Asignatura").Value(&v.Subject),
			huh.NewSelect[string]().
				Title("Nivel").
				Options(huh.NewOptions(string(domain.LevelEGB), string(domain.LevelBGU))...).
				Value(&v.Level),
			huh.NewInput().
				Title("Grado / Curso").
				Value(&v.Grade).
				Validate(func(s string) error { return validateGrade(domain.ParseLevel(v.Level), s) }),
			huh.NewInput().Title("Unidad").Value(&v.Unit),
			huh.NewInput().Title("Tema").Value(&v.Topic),
			huh.NewInput().
				Title("Duración total (min)").
				Placeholder("40").
				Value(&v.Duration).
				Validate(validateOptionalMinutes),
		),
	).WithTheme(ercaHuhTheme()).WithShowHelp(false)
}

func planSkillForm(options []huh.Option[string], v *planFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Destreza").
				Description("Ordered by relevance to the topic; the suggested one is first.").
				Options(options...).
				Value(&v.Skill),
		),
	).WithTheme(ercaHuhTheme()).WithShowHelp(false)
}

// runPlanForm asks for the selection in two steps: the details, then a
// skill among the candidates of the resolved sub-level.
func runPlanForm(app *App, sel *domain.Selection, duration *int) error {
	v := planFormValues{
		Subject: sel.Subject,
		Level:   string(domain.ParseLevel(string(sel.Level))),
		Grade:   sel.Grade,
		Unit:    sel.Unit,
		Topic:   sel.Topic,
	}
	if *duration > 0 {
		v.Duration = strconv.Itoa(*duration)
	}
	if err := planDetailsForm(&v).Run(); err != nil {
		return fmt.Errorf("plan form: %w", err)
	}

	sel.Subject, sel.Level, sel.Grade = v.Subject, domain.ParseLevel(v.Level), v.Grade
	sel.Unit, sel.Topic = v.Unit, v.Topic
	if d := strings.TrimSpace(v.Duration); d != "" {
		*duration, _ = strconv.Atoi(d)
	}

	key := sel.SubLevelKey
	if key == "" {
		key = app.Plans.Resolve(sel.Level, sel.Grade).AvailableKey
	}
	options := skillOptions(app, key, sel.Topic)
	if len(options) == 0 {
		return nil
	}
	v.Skill = options[0].Value
	if err := planSkillForm(options, &v).Run(); err != nil {
		return fmt.Errorf("plan form: %w", err)
	}
	sel.SkillCode = v.Skill
	return nil
}

// skillOptions lists the candidates of a sub-level, best match first.
func skillOptions(app *App, key, topic string) []huh.Option[string] {
	scored := app.Plans.Match(key, topic)
	options := make([]huh.Option[string], 0, len(scored))
	for _, s := range scored {
		opt := huh.NewOption(formatter.Truncate(s.Code+" — "+s.Description, 100), s.Code)
		if s.Best {
			options = append([]huh.Option[string]{opt}, options...)
			continue
		}
		options = append(options, opt)
	}
	return options
}

func validateGrade(level domain.Level, s string) error {
	g, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if g < 1 || g > level.MaxGrade() {
		return fmt.Errorf("%s grades go from 1 to %d", level, level.MaxGrade())
	}
	return nil
}

func validateOptionalMinutes(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	return nil
}
