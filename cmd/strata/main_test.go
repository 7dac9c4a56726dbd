package main

import (
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/stratametrics/strata/pkg/analyzer"
	"github.com/stratametrics/strata/pkg/config"
	"github.com/stratametrics/strata/pkg/spaces"
)

// TestGetPaths verifies path handling from CLI arguments.
func TestGetPaths(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no args defaults to current dir",
			args:     []string{},
			expected: []string{"."},
		},
		{
			name:     "single path",
			args:     []string{"/foo/bar"},
			expected: []string{"/foo/bar"},
		},
		{
			name:     "multiple paths",
			args:     []string{"/foo", "/bar"},
			expected: []string{"/foo", "/bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &cli.App{
				Action: func(c *cli.Context) error {
					result := getPaths(c)
					if len(result) != len(tt.expected) {
						t.Errorf("getPaths() = %v, want %v", result, tt.expected)
						return nil
					}
					for i := range result {
						if result[i] != tt.expected[i] {
							t.Errorf("getPaths()[%d] = %q, want %q", i, result[i], tt.expected[i])
						}
					}
					return nil
				},
			}
			args := append([]string{"test"}, tt.args...)
			_ = app.Run(args)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is a longer string", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestMiColorUncolored(t *testing.T) {
	if got := miColor(12.34, 20, false); got != "12.3" {
		t.Errorf("miColor() = %q, want %q", got, "12.3")
	}
}

func TestGenerateDefaultConfig(t *testing.T) {
	content, err := generateDefaultConfig()
	if err != nil {
		t.Fatalf("generateDefaultConfig() error: %v", err)
	}
	for _, section := range []string{"[analysis]", "[thresholds]", "[exclude]", "[cache]", "[output]"} {
		if !strings.Contains(content, section) {
			t.Errorf("generated config missing %s:\n%s", section, content)
		}
	}
}

func TestFunctionTable(t *testing.T) {
	res := &analyzer.FileResult{
		Path:     "demo.go",
		Language: "go",
		Root: &spaces.Space{
			Name: "demo.go",
			Kind: spaces.KindUnit,
			Spaces: []*spaces.Space{
				{Name: "outer", Kind: spaces.KindFunction, StartLine: 3, EndLine: 9},
				{Name: "<anonymous>", Kind: spaces.KindClosure, StartLine: 5, EndLine: 7},
				{Name: "Widget", Kind: spaces.KindClass, StartLine: 11, EndLine: 20},
			},
		},
	}

	table := functionTable([]*analyzer.FileResult{res}, config.DefaultConfig(), false)
	rows := table.Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 function rows (class excluded), got %d", len(rows))
	}
	if rows[0][1] != "outer" {
		t.Errorf("first row function = %q, want %q", rows[0][1], "outer")
	}
}

func TestFileTableRowPerFile(t *testing.T) {
	results := []*analyzer.FileResult{
		{Path: "a.go", Language: "go", Root: &spaces.Space{Name: "a.go", Kind: spaces.KindUnit}},
		{Path: "b.py", Language: "python", Root: &spaces.Space{Name: "b.py", Kind: spaces.KindUnit}},
	}

	table := fileTable(results, analyzer.Summarize(results), config.DefaultConfig(), false)
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[1][1] != "python" {
		t.Errorf("language column = %q, want %q", table.Rows[1][1], "python")
	}
}
