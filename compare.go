package promptpath

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// DefaultTestDirs are the directories benchmarked when none are
// configured. Patterns may use ~ and doublestar globs.
var DefaultTestDirs = []string{
	"~/code/github.com/ethereum-optimism/optimism",
	"~/code/github.com/ethereum-optimism/optimism/op-node",
	"~/code",
}

// Candidate is one executable under comparison.
type Candidate struct {
	Label   string
	Command Command
}

// CompareCommand benchmarks two candidate executables across a set of
// working directories and renders a comparison report.
type CompareCommand struct {
	FS       FileSystem
	Runner   *Runner
	Resolver *Resolver
	Log      *slog.Logger
}

// CompareOptions holds options for a comparison run.
type CompareOptions struct {
	Dirs       []string // directory paths or glob patterns; ~ is expanded
	Iterations int      // 0 = DefaultIterations
	WarmupRuns int      // 0 = DefaultWarmupRuns
}

// DirComparison holds both candidates' results for one directory.
type DirComparison struct {
	Dir     string // ~-collapsed for display
	Results []BenchmarkResult
}

// CompareResult holds the full comparison across all directories.
type CompareResult struct {
	Comparisons []DirComparison
}

// NewCompareCommand creates a CompareCommand with explicit dependencies
// (for testing).
func NewCompareCommand(fs FileSystem, runner *Runner, resolver *Resolver, log *slog.Logger) *CompareCommand {
	return &CompareCommand{
		FS:       fs,
		Runner:   runner,
		Resolver: resolver,
		Log:      log,
	}
}

// NewDefaultCompareCommand creates a CompareCommand with production
// defaults.
func NewDefaultCompareCommand(resolver *Resolver, log *slog.Logger) *CompareCommand {
	return &CompareCommand{
		FS:       osFS{},
		Runner:   NewRunner(WithRunnerLogger(log)),
		Resolver: resolver,
		Log:      log,
	}
}

// Run benchmarks both candidates in every resolved test directory.
// Each directory is passed to the child processes as their working
// directory at launch; the parent's own working directory is never
// changed, so both candidates observe identical state. The first
// failed invocation aborts the whole comparison with no partial result
// for the in-progress directory.
func (c *CompareCommand) Run(ctx context.Context, a, b Candidate, opts CompareOptions) (CompareResult, error) {
	bopts := BenchmarkOptions{
		Iterations: opts.Iterations,
		WarmupRuns: opts.WarmupRuns,
	}
	if bopts.Iterations == 0 {
		bopts.Iterations = DefaultIterations
	}
	if bopts.WarmupRuns == 0 {
		bopts.WarmupRuns = DefaultWarmupRuns
	}

	patterns := opts.Dirs
	if len(patterns) == 0 {
		patterns = DefaultTestDirs
	}

	dirs, err := c.expandDirs(patterns)
	if err != nil {
		return CompareResult{}, err
	}

	var result CompareResult
	for _, dir := range dirs {
		c.Log.Info("benchmarking directory", LogAttrKeyCategory.Attr(LogCategoryBench),
			slog.String("dir", dir))

		resA, err := c.Runner.Benchmark(ctx, dir, a.Command, a.Label, bopts)
		if err != nil {
			return CompareResult{}, fmt.Errorf("candidate %s in %s: %w", a.Label, dir, err)
		}
		resB, err := c.Runner.Benchmark(ctx, dir, b.Command, b.Label, bopts)
		if err != nil {
			return CompareResult{}, fmt.Errorf("candidate %s in %s: %w", b.Label, dir, err)
		}

		result.Comparisons = append(result.Comparisons, DirComparison{
			Dir:     c.Resolver.collapseHome(dir),
			Results: []BenchmarkResult{resA, resB},
		})
	}

	return result, nil
}

// expandDirs resolves ~ and glob patterns to concrete directories and
// verifies each exists.
func (c *CompareCommand) expandDirs(patterns []string) ([]string, error) {
	var dirs []string
	for _, pattern := range patterns {
		abs := c.Resolver.Normalize(pattern)

		if !strings.ContainsAny(abs, "*?[{") {
			if _, err := c.FS.Stat(abs); err != nil {
				if c.FS.IsNotExist(err) {
					return nil, fmt.Errorf("test directory %s does not exist", pattern)
				}
				return nil, fmt.Errorf("test directory %s: %w", pattern, err)
			}
			dirs = append(dirs, abs)
			continue
		}

		matches, err := c.FS.Glob("/", strings.TrimPrefix(abs, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid directory pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no directories match pattern %s", pattern)
		}
		for _, m := range matches {
			dirs = append(dirs, "/"+m)
		}
	}
	return dirs, nil
}

var _ Formatter = CompareResult{}

// Format renders the comparison report. The results for each directory
// are indented one level under its header.
func (r CompareResult) Format(opts FormatOptions) FormatResult {
	var buf bytes.Buffer
	iw := NewIndentWriter(&buf, "  ")

	for i, c := range r.Comparisons {
		if i > 0 {
			iw.Blankln()
		}

		dir := c.Dir
		if opts.ColorEnabled {
			dir = colorHeader(dir)
		}
		iw.Writef("Benchmarking in directory: %s", dir)
		iw.Blankln()

		iw.Indent()
		iw.Writeln("Benchmark results (times in milliseconds):")
		for row := range strings.Lines(renderStatsTable(c.Results)) {
			iw.Writeln(strings.TrimSuffix(row, "\n"))
		}

		if line, ok := c.speedupLine(); ok {
			if opts.ColorEnabled {
				line = colorSpeedup(line)
			}
			iw.Blankln()
			iw.Writeln(line)
		}
		iw.Dedent()
	}

	return FormatResult{Stdout: buf.String()}
}

// renderStatsTable renders one stats row per candidate, 3 decimal
// places, milliseconds.
func renderStatsTable(results []BenchmarkResult) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Program", "Min", "Max", "Mean", "Median", "StdDev"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, res := range results {
		s := res.Samples
		table.Append([]string{
			res.Label,
			fmt.Sprintf("%.3f", s.Min()),
			fmt.Sprintf("%.3f", s.Max()),
			fmt.Sprintf("%.3f", s.Mean()),
			fmt.Sprintf("%.3f", s.Median()),
			fmt.Sprintf("%.3f", s.StdDev()),
		})
	}
	table.Render()

	return buf.String()
}

// speedupLine reports the mean-time ratio between the two candidates.
// The faster candidate is named first regardless of order; exactly
// equal means produce no line.
func (c DirComparison) speedupLine() (string, bool) {
	if len(c.Results) != 2 {
		return "", false
	}
	a, b := c.Results[0], c.Results[1]
	meanA, meanB := a.Samples.Mean(), b.Samples.Mean()
	if meanA == 0 || meanB == 0 {
		return "", false
	}

	ratio := meanA / meanB
	switch {
	case ratio > 1:
		return fmt.Sprintf("%s is %.1fx faster than %s (based on mean times)", b.Label, ratio, a.Label), true
	case ratio < 1:
		return fmt.Sprintf("%s is %.1fx faster than %s (based on mean times)", a.Label, 1/ratio, b.Label), true
	}
	return "", false
}
