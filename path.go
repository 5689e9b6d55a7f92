package promptpath

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// DisplayUnknown is printed when the working directory cannot be read.
const DisplayUnknown = "unknown"

// Resolver shortens working directory paths for prompt display.
// It holds an immutable Config and the home directory used for ~
// expansion; it performs no filesystem access.
type Resolver struct {
	Home   string
	Config *Config
	Log    *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger used for resolution tracing.
func WithResolverLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.Log = log
	}
}

// NewResolver creates a Resolver for the given home directory and config.
func NewResolver(home string, cfg *Config, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		Home:   home,
		Config: cfg,
		Log:    NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize expands a leading ~ to the home directory and collapses the
// result to its canonical lexical form. Purely lexical: no symlink
// resolution, no filesystem access. Idempotent.
func (r *Resolver) Normalize(path string) string {
	return filepath.Clean(r.expandHome(path))
}

// expandHome replaces a leading ~ with the home directory.
func (r *Resolver) expandHome(path string) string {
	if path == "~" {
		return r.Home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(r.Home, rest)
	}
	return path
}

// collapseHome replaces the leading home directory segment with ~.
// Only the first occurrence is replaced, and only when the path starts
// with the home directory.
func (r *Resolver) collapseHome(path string) string {
	if strings.HasPrefix(path, r.Home) {
		return "~" + path[len(r.Home):]
	}
	return path
}

// FindProjectAlias returns the configured mapping whose normalized path
// is the longest string prefix of the normalized working directory.
// Equal-length matches resolve to the first declared mapping.
//
// The prefix test is a raw string comparison, not segment-aware:
// ~/code/foo matches a working directory ~/code/foobar. That mirrors
// the established prompt behavior and is pinned by tests.
func (r *Resolver) FindProjectAlias(workingDir string) (ProjectMapping, bool) {
	pwd := r.Normalize(workingDir)

	var best ProjectMapping
	bestLen := -1
	for _, m := range r.Config.Projects {
		pattern := r.Normalize(m.Path)
		if !strings.HasPrefix(pwd, pattern) {
			continue
		}
		if len(pattern) > bestLen {
			best = m
			bestLen = len(pattern)
		}
	}

	if bestLen < 0 {
		return ProjectMapping{}, false
	}
	r.Log.Debug("matched project alias", LogAttrKeyCategory.Attr(LogCategoryResolve),
		slog.String("path", best.Path), slog.String("alias", best.Alias))
	return best, true
}

// DisplayPath maps a working directory to its shortened display string.
//
// The home directory itself displays as ~ and the filesystem root as /.
// Otherwise the home prefix collapses to ~, the longest matching project
// alias is substituted, and failing that the code root prefix is
// stripped. The result never has a leading or trailing separator.
func (r *Resolver) DisplayPath(workingDir string) string {
	path := filepath.Clean(workingDir)
	if path == r.Home {
		return "~"
	}
	if path == "/" {
		return "/"
	}

	display := r.collapseHome(path)

	if m, ok := r.FindProjectAlias(display); ok {
		shortened := strings.Replace(display, m.Path, m.Alias, 1)
		return stripTrailingSlashes(stripLeadingSlashes(shortened))
	}

	return stripTrailingSlashes(stripLeadingSlashes(r.collapseCodeRoot(display)))
}

// collapseCodeRoot strips the code root prefix from a ~-collapsed path.
// The exact-root case drops the leading "~/" marker; a root shorter
// than the marker trims to nothing. A path outside the code root
// passes through unchanged.
func (r *Resolver) collapseCodeRoot(display string) string {
	root := r.Config.CodeRoot
	if display == root {
		if len(display) < 2 {
			return ""
		}
		return display[2:]
	}

	trimmed := strings.Replace(display, root, "", 1)
	if trimmed == display {
		return display
	}
	return stripLeadingSlashes(trimmed)
}

// stripLeadingSlashes removes leading separators, except for bare /.
func stripLeadingSlashes(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimLeft(path, "/")
}

// stripTrailingSlashes removes trailing separators, except for bare /.
func stripTrailingSlashes(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimRight(path, "/")
}
