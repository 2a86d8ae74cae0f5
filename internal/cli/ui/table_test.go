package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Kind", "Count"}, &TableOptions{NoColor: true})

	table.AddRow("types", "4")
	table.AddRow("enums", "2")
	table.AddRow("scalars", "1")

	table.Render()

	output := buf.String()

	for _, want := range []string{"Kind", "Count", "types", "enums", "scalars", "4", "2", "1"} {
		if !strings.Contains(output, want) {
			t.Errorf("Table output missing %q\ngot:\n%s", want, output)
		}
	}

	// Header comes before separator, separator before rows
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines of output, got %d:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("expected separator on second line, got %q", lines[1])
	}
}

func TestTableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, nil, &TableOptions{NoColor: true})
	table.AddRow("orphan")
	table.Render()

	if buf.Len() != 0 {
		t.Errorf("expected no output for headerless table, got %q", buf.String())
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abcdef"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
