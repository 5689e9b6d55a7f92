// Package main provides a benchmark tool comparing promptpath implementations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "promptbench:", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:           "promptbench",
	Short:         "Benchmark tool for promptpath performance testing",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
