package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patcheck/exhaustive/internal/fixture"
	"github.com/patcheck/exhaustive/internal/pattern"
	"github.com/patcheck/exhaustive/internal/session"
)

var replUnionPath string
var replDemo string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively build up a match, one branch per line",
	Long: `repl starts an interactive session over a constructor union: every
line you type adds one branch pattern, and the session reports whether it
is redundant and whether the branches seen so far are exhaustive.

The union comes from --union (a scenario file's 'union:' section; its
branches are ignored) or from a --demo preset (bool, option).`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replUnionPath, "union", "", "scenario file whose union to load")
	replCmd.Flags().StringVar(&replDemo, "demo", "bool", "built-in demo union (bool|option)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	u, err := resolveUnion()
	if err != nil {
		return err
	}
	s := session.New(u)
	return s.Start(os.Stdin, cmd.OutOrStdout())
}

func resolveUnion() (pattern.Union, error) {
	if replUnionPath != "" {
		scenario, err := fixture.Load(replUnionPath)
		if err != nil {
			return pattern.Union{}, err
		}
		return scenario.Union(), nil
	}

	switch replDemo {
	case "bool":
		return pattern.Union{
			RenderAs: pattern.RenderTag,
			Alternatives: []pattern.Ctor{
				{Name: pattern.Tag("True"), TagID: 0, Arity: 0},
				{Name: pattern.Tag("False"), TagID: 1, Arity: 0},
			},
		}, nil
	case "option":
		return pattern.Union{
			RenderAs: pattern.RenderTag,
			Alternatives: []pattern.Ctor{
				{Name: pattern.Tag("Some"), TagID: 0, Arity: 1},
				{Name: pattern.Tag("None"), TagID: 1, Arity: 0},
			},
		}, nil
	default:
		return pattern.Union{}, fmt.Errorf("unknown demo union %q (want bool or option)", replDemo)
	}
}
