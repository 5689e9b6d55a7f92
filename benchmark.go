package promptpath

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// Default iteration counts for benchmark runs.
const (
	DefaultIterations = 1000
	DefaultWarmupRuns = 5
)

// Commander abstracts launching one child process and waiting for it.
// Output is discarded; a non-zero exit status is returned as an error.
type Commander interface {
	// Run executes the command with dir as its working directory and
	// blocks until it exits.
	Run(ctx context.Context, dir string, name string, args ...string) error
}

type osCommander struct{}

func (osCommander) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Command is an executable with its arguments.
type Command struct {
	Name string
	Args []string
}

// BenchmarkOptions holds iteration controls for a benchmark run.
type BenchmarkOptions struct {
	Iterations int
	WarmupRuns int
}

// BenchmarkResult aggregates one candidate's retained samples.
type BenchmarkResult struct {
	Label   string
	Samples Samples
}

// Runner measures wall-clock latency of external commands.
type Runner struct {
	Commander Commander
	Log       *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithCommander sets the Commander instance (for testing).
func WithCommander(c Commander) RunnerOption {
	return func(r *Runner) {
		r.Commander = c
	}
}

// WithRunnerLogger sets the logger used for benchmark tracing.
func WithRunnerLogger(log *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.Log = log
	}
}

// NewRunner creates a Runner with production defaults.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		Commander: osCommander{},
		Log:       NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TimeOnce runs the command once in dir and returns the elapsed
// wall-clock duration in fractional milliseconds. The child's output is
// discarded; a failed launch or non-zero exit is a hard error.
func (r *Runner) TimeOnce(ctx context.Context, dir string, cmd Command) (float64, error) {
	start := time.Now()
	if err := r.Commander.Run(ctx, dir, cmd.Name, cmd.Args...); err != nil {
		return 0, err
	}
	return float64(time.Since(start)) / float64(time.Millisecond), nil
}

// Benchmark runs the command WarmupRuns times discarding the durations,
// then Iterations times retaining every duration in order. The first
// failed invocation aborts the whole run.
func (r *Runner) Benchmark(ctx context.Context, dir string, cmd Command, label string, opts BenchmarkOptions) (BenchmarkResult, error) {
	if opts.Iterations < 1 {
		return BenchmarkResult{}, fmt.Errorf("benchmark %s: iterations must be at least 1, got %d", label, opts.Iterations)
	}

	r.Log.Debug("starting benchmark", LogAttrKeyCategory.Attr(LogCategoryBench),
		slog.String("label", label), slog.Int("iterations", opts.Iterations), slog.Int("warmup", opts.WarmupRuns))

	for range opts.WarmupRuns {
		if _, err := r.TimeOnce(ctx, dir, cmd); err != nil {
			return BenchmarkResult{}, fmt.Errorf("warmup run failed: %w", err)
		}
	}

	samples := make(Samples, 0, opts.Iterations)
	for range opts.Iterations {
		d, err := r.TimeOnce(ctx, dir, cmd)
		if err != nil {
			return BenchmarkResult{}, fmt.Errorf("benchmark run failed: %w", err)
		}
		samples = append(samples, d)
	}

	return BenchmarkResult{Label: label, Samples: samples}, nil
}
