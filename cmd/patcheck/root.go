package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patcheck",
	Short: "Pattern-match exhaustiveness and usefulness analyzer",
	Long: `patcheck checks a set of match branches, declared over a named
constructor union, for exhaustiveness (every value of the type is
matched) and usefulness (no branch is shadowed by an earlier one).`,
}

func init() {
	rootCmd.Version = versionString()
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}
