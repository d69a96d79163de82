package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/patcheck/exhaustive/internal/exhaustive"
	"github.com/patcheck/exhaustive/internal/fixture"
	"github.com/patcheck/exhaustive/internal/session"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <scenario.yaml>",
	Short: "Check a declarative scenario file for exhaustiveness",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the diagnostic as structured JSON instead of colored text")
}

func runCheck(cmd *cobra.Command, args []string) error {
	scenario, err := fixture.Load(args[0])
	if err != nil {
		return err
	}
	m, err := scenario.Matrix()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errs := exhaustive.Check(scenario.Name, exhaustive.BadCase, m)
	if len(errs) == 0 {
		if checkJSON {
			return nil
		}
		fmt.Fprintf(out, "%s %s: exhaustive\n", color.GreenString("ok"), scenario.Name)
		return nil
	}

	incomplete := errs[0]
	if checkJSON {
		enc := incomplete.Encode(scenario.Name, session.Render)
		data, err := enc.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return fmt.Errorf("%d uncovered case(s)", len(incomplete.Witnesses))
	}

	fmt.Fprintf(out, "%s %s: incomplete, %d case(s) uncovered\n", color.YellowString("incomplete"), scenario.Name, len(incomplete.Witnesses))
	for _, w := range incomplete.Witnesses {
		fmt.Fprintf(out, "  missing: %s\n", session.Render(w))
	}
	return fmt.Errorf("%d uncovered case(s)", len(incomplete.Witnesses))
}
