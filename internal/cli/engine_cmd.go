package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/erca/internal/cli/formatter"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/spf13/cobra"
)

func newResolveCmd(app *App) *cobra.Command {
	var level domain.Level
	var grade string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the sub-level a level and grade map to",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResolution(app.Plans.Resolve(level, grade)))
			return nil
		},
	}
	addGradeFlags(cmd.Flags(), &level, &grade)
	return cmd
}

func newSkillsCmd(app *App) *cobra.Command {
	var level domain.Level
	var grade, subLevel string

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List the skills of the resolved sub-level",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := subLevel
			if key == "" {
				key = app.Plans.Resolve(level, grade).AvailableKey
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSkills(app.Plans.Skills(key)))
			return nil
		},
	}
	addGradeFlags(cmd.Flags(), &level, &grade)
	cmd.Flags().StringVar(&subLevel, "sublevel", "", "Sub-level key (overrides --level/--grade)")
	return cmd
}

func newMatchCmd(app *App) *cobra.Command {
	var level domain.Level
	var grade, subLevel, topic string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score the skills of a sub-level against a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := subLevel
			if key == "" {
				key = app.Plans.Resolve(level, grade).AvailableKey
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMatches(topic, app.Plans.Match(key, topic)))
			return nil
		},
	}
	addGradeFlags(cmd.Flags(), &level, &grade)
	cmd.Flags().StringVar(&subLevel, "sublevel", "", "Sub-level key (overrides --level/--grade)")
	cmd.Flags().StringVar(&topic, "topic", "", "Lesson topic")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newAllocateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate TOTAL",
		Short: "Split a lesson duration across the ERCA phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid total %q: must be whole minutes", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAllocation(app.Plans.Allocate(total)))
			return nil
		},
	}
}
