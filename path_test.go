package promptpath

import (
	"strings"
	"testing"
)

const testHome = "/home/tcrypt"

func testResolver() *Resolver {
	cfg := &Config{
		CodeRoot: "~/code",
		Projects: []ProjectMapping{
			{Path: "~/code/github.com/ethereum-optimism/optimism", Alias: "optimism"},
			{Path: "~/code/github.com/acme/widgets", Alias: "widgets"},
		},
	}
	return NewResolver(testHome, cfg)
}

func TestResolver_Normalize(t *testing.T) {
	t.Parallel()

	r := testResolver()

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "bare tilde expands to home",
			path: "~",
			want: testHome,
		},
		{
			name: "tilde prefix expands to home",
			path: "~/code",
			want: testHome + "/code",
		},
		{
			name: "dot dot segments resolve",
			path: "/a/b/../c",
			want: "/a/c",
		},
		{
			name: "redundant separators collapse",
			path: "/a//b/./c",
			want: "/a/b/c",
		},
		{
			name: "absolute path passes through",
			path: "/usr/local/bin",
			want: "/usr/local/bin",
		},
		{
			name: "tilde mid path is not expanded",
			path: "/srv/~/code",
			want: "/srv/~/code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Normalize(tt.path)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.path, got, tt.want)
			}

			// Normalizing an already-normalized path is a no-op.
			if again := r.Normalize(got); again != got {
				t.Errorf("Normalize(%q) = %q, not idempotent", got, again)
			}
		})
	}
}

func TestResolver_FindProjectAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		projects   []ProjectMapping
		workingDir string
		wantAlias  string
		wantFound  bool
	}{
		{
			name: "exact match",
			projects: []ProjectMapping{
				{Path: "~/code/github.com/acme/widgets", Alias: "widgets"},
			},
			workingDir: "~/code/github.com/acme/widgets",
			wantAlias:  "widgets",
			wantFound:  true,
		},
		{
			name: "nested directory matches",
			projects: []ProjectMapping{
				{Path: "~/code/github.com/acme/widgets", Alias: "widgets"},
			},
			workingDir: testHome + "/code/github.com/acme/widgets/internal/deep",
			wantAlias:  "widgets",
			wantFound:  true,
		},
		{
			name: "longest pattern wins",
			projects: []ProjectMapping{
				{Path: "~/code/a", Alias: "outer"},
				{Path: "~/code/a/b", Alias: "inner"},
			},
			workingDir: "~/code/a/b/c",
			wantAlias:  "inner",
			wantFound:  true,
		},
		{
			name: "longest pattern wins regardless of declaration order",
			projects: []ProjectMapping{
				{Path: "~/code/a/b", Alias: "inner"},
				{Path: "~/code/a", Alias: "outer"},
			},
			workingDir: "~/code/a/b/c",
			wantAlias:  "inner",
			wantFound:  true,
		},
		{
			name: "no match",
			projects: []ProjectMapping{
				{Path: "~/code/github.com/acme/widgets", Alias: "widgets"},
			},
			workingDir: "~/documents",
			wantFound:  false,
		},
		{
			// The prefix test is a raw string comparison, not
			// segment-aware. Pinned as current behavior.
			name: "prefix match is not segment aware",
			projects: []ProjectMapping{
				{Path: "~/code/foo", Alias: "foo"},
			},
			workingDir: "~/code/foobar",
			wantAlias:  "foo",
			wantFound:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResolver(testHome, &Config{CodeRoot: "~/code", Projects: tt.projects})
			got, found := r.FindProjectAlias(tt.workingDir)

			if found != tt.wantFound {
				t.Fatalf("FindProjectAlias(%q) found = %v, want %v", tt.workingDir, found, tt.wantFound)
			}
			if found && got.Alias != tt.wantAlias {
				t.Errorf("FindProjectAlias(%q) alias = %q, want %q", tt.workingDir, got.Alias, tt.wantAlias)
			}
		})
	}
}

func TestResolver_DisplayPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		workingDir string
		want       string
	}{
		{
			name:       "alias with nested segment",
			workingDir: testHome + "/code/github.com/ethereum-optimism/optimism/op-node",
			want:       "optimism/op-node",
		},
		{
			name:       "alias at project root",
			workingDir: testHome + "/code/github.com/ethereum-optimism/optimism",
			want:       "optimism",
		},
		{
			name:       "code root itself drops the tilde prefix",
			workingDir: testHome + "/code",
			want:       "code",
		},
		{
			name:       "unaliased project under code root",
			workingDir: testHome + "/code/otherproject",
			want:       "otherproject",
		},
		{
			name:       "home directory displays as tilde",
			workingDir: testHome,
			want:       "~",
		},
		{
			name:       "filesystem root displays as slash",
			workingDir: "/",
			want:       "/",
		},
		{
			name:       "home path outside code root keeps tilde form",
			workingDir: testHome + "/documents/notes",
			want:       "~/documents/notes",
		},
		{
			name:       "path outside home loses leading separator",
			workingDir: "/tmp/scratch",
			want:       "tmp/scratch",
		},
		{
			name:       "trailing separator is stripped",
			workingDir: testHome + "/code/otherproject/",
			want:       "otherproject",
		},
		{
			// Raw prefix substitution: the alias replaces the pattern
			// even when the match splits a path segment.
			name:       "segment unaware alias substitution",
			workingDir: testHome + "/code/github.com/acme/widgetsextra",
			want:       "widgetsextra",
		},
	}

	r := testResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.DisplayPath(tt.workingDir)
			if got != tt.want {
				t.Errorf("DisplayPath(%q) = %q, want %q", tt.workingDir, got, tt.want)
			}
		})
	}
}

func TestResolver_DisplayPath_NoLeadingSeparator(t *testing.T) {
	t.Parallel()

	r := testResolver()

	// Bare / is the one deliberate exception (root displays as /).
	inputs := []string{
		testHome,
		testHome + "/code",
		testHome + "/code/github.com/ethereum-optimism/optimism/op-node",
		testHome + "/documents",
		"/tmp/scratch",
		"/var//log/../run",
		"",
	}

	for _, input := range inputs {
		got := r.DisplayPath(input)
		if got != "/" && strings.HasPrefix(got, "/") {
			t.Errorf("DisplayPath(%q) = %q, has leading separator", input, got)
		}
	}
}

func TestResolver_DisplayPath_ShortCodeRoot(t *testing.T) {
	t.Parallel()

	r := NewResolver(testHome, &Config{CodeRoot: "~"})

	tests := []struct {
		name       string
		workingDir string
		want       string
	}{
		{
			name:       "working directory equal to the one-character root",
			workingDir: "~",
			want:       "",
		},
		{
			name:       "path under the one-character root",
			workingDir: "~/projects",
			want:       "projects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.DisplayPath(tt.workingDir)
			if got != tt.want {
				t.Errorf("DisplayPath(%q) = %q, want %q", tt.workingDir, got, tt.want)
			}
		})
	}
}

func TestResolver_DisplayPath_EmptyProjects(t *testing.T) {
	t.Parallel()

	r := NewResolver(testHome, DefaultConfig())

	got := r.DisplayPath(testHome + "/code/github.com/acme/widgets")
	want := "github.com/acme/widgets"
	if got != want {
		t.Errorf("DisplayPath() = %q, want %q", got, want)
	}
}

func BenchmarkResolver_DisplayPath(b *testing.B) {
	r := testResolver()
	dir := testHome + "/code/github.com/ethereum-optimism/optimism/op-node"

	b.ReportAllocs()
	for b.Loop() {
		r.DisplayPath(dir)
	}
}
