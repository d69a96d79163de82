// Command patcheck is a small CLI front end for the exhaustiveness
// analyzer: check a declarative scenario file for completeness, or drop
// into an interactive session to build up a match one branch at a time.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
