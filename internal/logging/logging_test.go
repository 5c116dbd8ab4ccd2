package logging

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jot.log")

	lf, err := Open(Options{Path: path, Level: "info", Prefix: "jot"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	lf.Info("todo added", "count", 3)
	lf.Debug("hidden at info level")
	if err := lf.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "todo added") || !strings.Contains(out, "count=3") {
		t.Fatalf("log output = %q, want message and field", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message written at info level: %q", out)
	}
}

func TestOpen_DebugOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jot.log")
	lf, err := Open(Options{Path: path, Level: "error", Debug: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer lf.Close()
	if lf.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", lf.GetLevel())
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(Options{Path: "  "}); err == nil {
		t.Fatalf("Open with empty path returned nil error")
	}
	if _, err := Open(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}); err == nil {
		t.Fatalf("Open with bad level returned nil error")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"":       log.InfoLevel,
		"debug":  log.DebugLevel,
		" WARN ": log.WarnLevel,
		"error":  log.ErrorLevel,
		"info":   log.InfoLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		want     []string
	}{
		{"all (0)", 0, all},
		{"all (negative)", -1, all},
		{"partial", 5, all[5:]},
		{"exact", 10, all},
		{"more than file", 20, all},
		{"one", 1, all[9:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tail(%d) = %v, want %v", tt.maxLines, got, tt.want)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if lines != nil {
		t.Fatalf("lines = %v, want nil", lines)
	}
}

func TestTail_HugeLimitOnSmallFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "small.log")
	if err := os.WriteFile(logPath, []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, n := range []int{1 << 62, math.MaxInt} {
		got, err := Tail(logPath, n)
		if err != nil {
			t.Fatalf("Tail(%d): %v", n, err)
		}
		if !reflect.DeepEqual(got, []string{"first", "second"}) {
			t.Fatalf("Tail(%d) = %v, want both lines", n, got)
		}
	}
}
