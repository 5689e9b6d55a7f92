package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/708u/promptpath"
	"github.com/spf13/cobra"
)

// Shared flags for the run command
var (
	runIterations int
	runWarmup     int
	runCandidateA string
	runCandidateB string
	runLabelA     string
	runLabelB     string
	runDirs       []string
	runColor      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compare two promptpath implementations",
	Long: `Compare the wall-clock latency of two promptpath implementations.

Each candidate is launched once per iteration as a child process with the
test directory as its working directory. Warmup runs are discarded, then
min/max/mean/median/stddev are reported per directory along with the
mean-time speedup ratio.

Test directories may use ~ and glob patterns:

  promptbench run --dir '~/code/github.com/*/*' --iterations 200`,
	Args: cobra.NoArgs,
	RunE: runComparison,
}

func runComparison(cmd *cobra.Command, args []string) error {
	promptpath.SetColorMode(promptpath.ColorMode(runColor))

	verbosity, _ := cmd.Flags().GetCount("verbose")
	log := createLogger(cmd.ErrOrStderr(), verbosity)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}

	binA, err := resolveCandidate(runCandidateA)
	if err != nil {
		return err
	}
	binB, err := resolveCandidate(runCandidateB)
	if err != nil {
		return err
	}

	result := promptpath.LoadConfig(home, promptpath.WithConfigLogger(log))
	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	resolver := promptpath.NewResolver(home, result.Config, promptpath.WithResolverLogger(log))

	compare := promptpath.NewDefaultCompareCommand(resolver, log)
	compared, err := compare.Run(cmd.Context(),
		promptpath.Candidate{Label: runLabelA, Command: promptpath.Command{Name: binA}},
		promptpath.Candidate{Label: runLabelB, Command: promptpath.Command{Name: binB}},
		promptpath.CompareOptions{
			Dirs:       runDirs,
			Iterations: runIterations,
			WarmupRuns: runWarmup,
		})
	if err != nil {
		return err
	}

	formatted := compared.Format(promptpath.FormatOptions{
		ColorEnabled: promptpath.IsColorEnabled(),
	})
	if formatted.Stderr != "" {
		fmt.Fprint(cmd.ErrOrStderr(), formatted.Stderr)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatted.Stdout)
	return nil
}

// resolveCandidate resolves a candidate executable to an absolute path.
// Bare names are looked up on PATH; relative paths are anchored to the
// current directory and must exist.
func resolveCandidate(bin string) (string, error) {
	if !strings.ContainsRune(bin, os.PathSeparator) {
		path, err := exec.LookPath(bin)
		if err != nil {
			return "", fmt.Errorf("candidate %s not found on PATH: %w", bin, err)
		}
		return path, nil
	}

	abs, err := filepath.Abs(bin)
	if err != nil {
		return "", fmt.Errorf("failed to resolve candidate path %s: %w", bin, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("candidate binary not found: %s", abs)
	}
	return abs, nil
}

// createLogger creates a logger based on verbosity level.
func createLogger(w io.Writer, verbosity int) *slog.Logger {
	if verbosity < 1 {
		return promptpath.NewNopLogger()
	}
	return slog.New(promptpath.NewCLIHandler(w, promptpath.VerbosityToLevel(verbosity)))
}

func init() {
	runCmd.Flags().IntVar(&runIterations, "iterations", promptpath.DefaultIterations, "Number of timed runs per candidate per directory")
	runCmd.Flags().IntVar(&runWarmup, "warmup", promptpath.DefaultWarmupRuns, "Number of discarded warmup runs")
	runCmd.Flags().StringVar(&runCandidateA, "candidate-a", "./promptpath.py", "Path to the first candidate executable")
	runCmd.Flags().StringVar(&runCandidateB, "candidate-b", "./promptpath", "Path to the second candidate executable")
	runCmd.Flags().StringVar(&runLabelA, "label-a", "Python", "Report label for the first candidate")
	runCmd.Flags().StringVar(&runLabelB, "label-b", "Go", "Report label for the second candidate")
	runCmd.Flags().StringArrayVar(&runDirs, "dir", nil, "Test directory or glob pattern (repeatable, default: built-in set)")
	runCmd.Flags().StringVar(&runColor, "color", "auto", "Color output: auto, always, never")
	runCmd.Flags().CountP("verbose", "v", "Enable verbose output (-v for progress, -vv for debug)")
}
