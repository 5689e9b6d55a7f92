// Package main provides the promptpath CLI, which prints a shortened,
// alias-aware form of the working directory for shell prompt display.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"
	"text/tabwriter"

	"github.com/708u/promptpath"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// DisplayPather resolves a working directory to its prompt display string.
type DisplayPather interface {
	DisplayPath(workingDir string) string
}

type options struct {
	resolver DisplayPather          // nil = build from loaded config
	getwd    func() (string, error) // nil = os.Getwd
	homeDir  func() (string, error) // nil = os.UserHomeDir
}

// Option configures newRootCmd.
type Option func(*options)

// WithResolver sets the DisplayPather instance for testing.
func WithResolver(r DisplayPather) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithGetwd sets the working directory lookup for testing.
func WithGetwd(getwd func() (string, error)) Option {
	return func(o *options) {
		o.getwd = getwd
	}
}

// WithHomeDir sets the home directory lookup for testing.
func WithHomeDir(homeDir func() (string, error)) Option {
	return func(o *options) {
		o.homeDir = homeDir
	}
}

// createLogger creates a logger based on verbosity level.
// Returns a nop logger for verbosity < 2, or a CLI handler logger for -vv.
func createLogger(w io.Writer, verbosity int) *slog.Logger {
	if verbosity < 2 {
		return promptpath.NewNopLogger()
	}
	return slog.New(promptpath.NewCLIHandler(w, promptpath.VerbosityToLevel(verbosity)))
}

func newRootCmd(opts ...Option) *cobra.Command {
	o := &options{
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(o)
	}

	var dirFlag string

	rootCmd := &cobra.Command{
		Use:           "promptpath",
		Short:         "Print a shortened working directory for the shell prompt",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			log := createLogger(cmd.ErrOrStderr(), verbosity)

			home, err := o.homeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %w", err)
			}

			resolver := o.resolver
			if resolver == nil {
				result := promptpath.LoadConfig(home, promptpath.WithConfigLogger(log))
				for _, w := range result.Warnings {
					fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
				}
				resolver = promptpath.NewResolver(home, result.Config,
					promptpath.WithResolverLogger(log))
			}

			dir := dirFlag
			if dir == "" {
				dir, err = o.getwd()
				if err != nil {
					// An unreadable working directory still needs a prompt.
					fmt.Fprintln(cmd.OutOrStdout(), promptpath.DisplayUnknown)
					return nil
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolver.DisplayPath(dir))
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "directory", "C", "", "Resolve <path> instead of the current directory")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Enable verbose output (-v for verbose, -vv for debug)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "version:\t%s\n", version)
			fmt.Fprintf(w, "commit:\t%s\n", commit)
			fmt.Fprintf(w, "date:\t%s\n", date)
			w.Flush()
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var rootCmd = newRootCmd()

func main() {
	os.Exit(run())
}

func run() int {
	// CPU profiling support via environment variable
	if profFile := os.Getenv("PROMPTPATH_CPUPROFILE"); profFile != "" {
		f, err := os.Create(profFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "promptpath: failed to create CPU profile: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "promptpath: failed to start CPU profile: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "promptpath:", err)
		return 1
	}
	return 0
}
