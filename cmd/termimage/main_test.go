package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/termart/imageutil"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradient.png")
	if err := imageutil.SavePNG(imageutil.CreateColorBarsImage(40, 40), path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		colorized bool
		width     int
		wantErr   bool
	}{
		{"defaults", []string{"in.png"}, false, 80, false},
		{"colorized", []string{"--colorized", "in.png"}, true, 80, false},
		{"flags after input", []string{"in.png", "--colorized", "--width", "12"}, true, 12, false},
		{"last switch wins", []string{"--colorized", "--no-colorized", "in.png"}, false, 80, false},
		{"last switch wins reversed", []string{"--no-colorized", "--colorized", "in.png"}, true, 80, false},
		{"missing input", []string{"--colorized"}, false, 80, true},
		{"extra argument", []string{"a.png", "b.png"}, false, 80, true},
		{"bad width", []string{"--width", "0", "in.png"}, false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			opts, err := parseArgs(tt.args, 80, &stderr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if tt.wantErr {
				return
			}
			if opts.input != "in.png" {
				t.Errorf("Expected input in.png, got %q", opts.input)
			}
			if opts.colorized != tt.colorized {
				t.Errorf("Expected colorized=%v, got %v", tt.colorized, opts.colorized)
			}
			if opts.width != tt.width {
				t.Errorf("Expected width=%d, got %d", tt.width, opts.width)
			}
		})
	}
}

func TestRunMonochrome(t *testing.T) {
	path := writeTestImage(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--width", "10", path}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	if strings.Contains(out, "\x1b") {
		t.Error("Expected no escape sequences in monochrome output")
	}
	// A square image at width 10 takes 5 rows of 2:1 cells.
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 10 {
			t.Errorf("Row %d: expected 10 glyphs, got %q", i, line)
		}
	}
}

func TestRunColorized(t *testing.T) {
	path := writeTestImage(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{path, "--colorized", "--width", "10"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "\x1b[") {
		t.Error("Expected color escape sequences in colorized output")
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "missing.png")}, &stdout, &stderr)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output on error, got %q", stdout.String())
	}
}
