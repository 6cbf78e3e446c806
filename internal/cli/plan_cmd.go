package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/erca/internal/cli/formatter"
	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	req := contract.NewPlanRequest()
	var duration int
	var interactive, copyOut, plain bool
	phases := map[domain.Phase]*int{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build an ERCA + DUA lesson plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				if err := runPlanForm(app, &req.Selection, &duration); err != nil {
					return err
				}
			}

			sel := req.Normalize()
			sel.DurationTotal = duration
			if sel.DurationTotal == 0 {
				sel.DurationTotal = app.Config.DefaultDuration
			}
			sel.Phases = manualPhases(cmd, app, sel.DurationTotal, phases)

			plan := app.Plans.Build(cmd.Context(), sel)
			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprint(out, formatter.PlanText(plan))
			} else {
				fmt.Fprint(out, formatter.FormatPlan(plan))
			}

			if copyOut {
				if err := app.copyText(formatter.PlanText(plan)); err != nil {
					return fmt.Errorf("copying plan to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Plan copied to clipboard."))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Subject, "subject", req.Subject, "Subject shown on the plan")
	addGradeFlags(f, &req.Level, &req.Grade)
	f.StringVar(&req.Unit, "unit", "", "Unit")
	f.StringVar(&req.Topic, "topic", "", "Lesson topic, also used to pick a skill")
	f.StringVar(&req.SkillCode, "skill", "", "Skill code to use instead of topic matching")
	f.StringVar(&req.SubLevelKey, "sublevel", "", "Sub-level key (overrides --level/--grade)")
	f.IntVar(&duration, "duration", 0, "Total minutes (default from ERCA_DEFAULT_DURATION)")
	for _, phase := range domain.PhaseOrder {
		phases[phase] = f.Int(phaseFlag(phase), 0, fmt.Sprintf("Minutes for %s (overrides the even split)", phase.Title()))
	}
	f.BoolVar(&interactive, "interactive", false, "Fill the selection in a form")
	f.BoolVar(&copyOut, "copy", false, "Copy the plain plan to the clipboard")
	f.BoolVar(&plain, "plain", false, "Print only the plain plan text")
	return cmd
}

// manualPhases starts from the even split of total and applies every phase
// flag the user set. It returns nil when no phase flag was given, so the
// plan is allocated fresh.
func manualPhases(cmd *cobra.Command, app *App, total int, flags map[domain.Phase]*int) *domain.PhaseAllocation {
	var edited bool
	alloc := app.Plans.Allocate(total).Phases
	for _, phase := range domain.PhaseOrder {
		if cmd.Flags().Changed(phaseFlag(phase)) {
			alloc = alloc.With(phase, *flags[phase])
			edited = true
		}
	}
	if !edited {
		return nil
	}
	return &alloc
}

func phaseFlag(p domain.Phase) string {
	return strings.ToLower(string(p))
}
