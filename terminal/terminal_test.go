package terminal

import (
	"bytes"
	"os"
	"testing"
)

func TestClearSkipsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := Clear(&buf); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written to a buffer, got %q", buf.String())
	}
}

func TestIsTerminalBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("A bytes.Buffer should never be a terminal")
	}
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("A regular file should not be a terminal")
	}
	if _, _, err := SizeOf(f); err == nil {
		t.Error("Expected an error querying the size of a regular file")
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		value    string
		fallback int
		expected int
	}{
		{"132", 80, 132},
		{"", 80, 80},
		{"wide", 80, 80},
		{"-5", 24, 24},
		{"0", 24, 24},
	}
	for _, tc := range tests {
		t.Setenv("TERMART_TEST_SIZE", tc.value)
		if got := envInt("TERMART_TEST_SIZE", tc.fallback); got != tc.expected {
			t.Errorf("envInt(%q, %d): expected %d, got %d",
				tc.value, tc.fallback, tc.expected, got)
		}
	}
}

func TestSizeIsPositive(t *testing.T) {
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "40")
	cols, rows := Size()
	if cols <= 0 || rows <= 0 {
		t.Errorf("Expected positive size, got %dx%d", cols, rows)
	}
}
