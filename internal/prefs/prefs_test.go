package prefs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestFile_MissingFileReportsAbsent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v, ok, err := NewFile("").Get(context.Background(), ThemeLightKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("Get = (%q, %v), want absent", v, ok)
	}
}

func TestFile_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "jot")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("\"theme.light\" = \"false\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	v, ok, err := NewFile("").Get(context.Background(), ThemeLightKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok || v != "false" {
		t.Fatalf("Get = (%q, %v), want (false, true)", v, ok)
	}
}

func TestFile_SetCreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")
	ctx := context.Background()

	f := NewFile(prefsFile)
	if err := f.Set(ctx, ThemeLightKey, "false"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := f.Set(ctx, "other", "x"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened := NewFile(prefsFile)
	v, ok, err := reopened.Get(ctx, ThemeLightKey)
	if err != nil || !ok || v != "false" {
		t.Fatalf("Get = (%q, %v, %v), want (false, true, nil)", v, ok, err)
	}
	if v, _, _ := reopened.Get(ctx, "other"); v != "x" {
		t.Fatalf("other = %q, want x", v)
	}
	if reopened.Path() != prefsFile {
		t.Fatalf("Path = %q, want %q", reopened.Path(), prefsFile)
	}
}

func TestFile_InvalidTOML(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ctx := context.Background()
	f := NewFile(prefsFile)

	if _, _, err := f.Get(ctx, ThemeLightKey); err == nil || !strings.Contains(err.Error(), "parse prefs") {
		t.Fatalf("Get error = %v, want parse prefs error", err)
	}

	if err := f.Set(ctx, ThemeLightKey, "true"); err != nil {
		t.Fatalf("Set should replace a corrupt file, got %v", err)
	}
	if v, ok, err := f.Get(ctx, ThemeLightKey); err != nil || !ok || v != "true" {
		t.Fatalf("Get after rewrite = (%q, %v, %v)", v, ok, err)
	}
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.sqlite")

	db, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if _, ok, err := db.Get(ctx, ThemeLightKey); err != nil || ok {
		t.Fatalf("Get on empty db = (%v, %v), want absent", ok, err)
	}
	if err := db.Set(ctx, ThemeLightKey, "false"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(ctx, ThemeLightKey, "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	v, ok, err := db.Get(ctx, ThemeLightKey)
	if err != nil || !ok || v != "true" {
		t.Fatalf("Get = (%q, %v, %v), want (true, true, nil)", v, ok, err)
	}
	if db.Path() != path {
		t.Fatalf("Path = %q, want %q", db.Path(), path)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()

	tests := []struct {
		backend string
		path    string
		check   func(Backend) bool
	}{
		{"", filepath.Join(tmp, "a.toml"), func(b Backend) bool { _, ok := b.(*File); return ok }},
		{"TOML", filepath.Join(tmp, "b.toml"), func(b Backend) bool { _, ok := b.(*File); return ok }},
		{"sqlite", filepath.Join(tmp, "c.sqlite"), func(b Backend) bool { _, ok := b.(*SQLite); return ok }},
		{" memory ", "", func(b Backend) bool { _, ok := b.(*Memory); return ok }},
	}
	for _, tt := range tests {
		b, err := Open(ctx, tt.backend, tt.path)
		if err != nil {
			t.Fatalf("Open(%q): %v", tt.backend, err)
		}
		if !tt.check(b) {
			t.Fatalf("Open(%q) returned %T", tt.backend, b)
		}
		_ = b.Close()
	}

	if _, err := Open(ctx, "etcd", ""); err == nil {
		t.Fatalf("Open(etcd) returned nil error")
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath("sqlite"); got != defaultSQLitePath {
		t.Fatalf("DefaultPath(sqlite) = %q", got)
	}
	if got := DefaultPath(""); got != defaultTOMLPath {
		t.Fatalf("DefaultPath(\"\") = %q", got)
	}
}

type failingKV struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingKV) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}

func TestFlag_LoadDefaults(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		stored *string
		want   bool
	}{
		{"absent", nil, true},
		{"false", ptr("false"), false},
		{"true", ptr("true"), true},
		{"padded", ptr(" false "), true},
		{"numeric false", ptr("0"), false},
		{"capitalized", ptr("FALSE"), false},
		{"garbage", ptr("garbage"), true},
		{"empty", ptr(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			if tt.stored != nil {
				_ = kv.Set(ctx, ThemeLightKey, *tt.stored)
			}
			f := NewFlag(ctx, kv, ThemeLightKey, nil)
			if got := f.Value(); got != tt.want {
				t.Fatalf("Value = %v, want %v", got, tt.want)
			}
			if got := f.Load(ctx); got != tt.want {
				t.Fatalf("Load = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlag_ReadErrorFallsBackToTrue(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	f := NewFlag(context.Background(), &failingKV{getErr: errors.New("disk gone")}, ThemeLightKey, logger)
	if !f.Value() {
		t.Fatalf("Value = false, want true on read error")
	}
	if !strings.Contains(buf.String(), "disk gone") {
		t.Fatalf("read error not logged: %q", buf.String())
	}
}

func TestFlag_SetPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.toml")

	f := NewFlag(ctx, NewFile(path), ThemeLightKey, nil)
	f.Set(ctx, false)
	if f.Value() {
		t.Fatalf("Value = true after Set(false)")
	}

	again := NewFlag(ctx, NewFile(path), ThemeLightKey, nil)
	if again.Value() {
		t.Fatalf("reloaded Value = true, want false")
	}

	if got := again.Toggle(ctx); !got {
		t.Fatalf("Toggle returned false, want true")
	}
	if got := NewFlag(ctx, NewFile(path), ThemeLightKey, nil).Value(); !got {
		t.Fatalf("reloaded after toggle = false, want true")
	}
}

func TestFlag_SetSwallowsWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	kv := &failingKV{setErr: errors.New("read-only")}

	f := NewFlag(context.Background(), kv, ThemeLightKey, logger)
	f.Set(context.Background(), false)

	if f.Value() {
		t.Fatalf("in-memory value should change even when the write fails")
	}
	if kv.sets != 1 {
		t.Fatalf("sets = %d, want 1", kv.sets)
	}
	if !strings.Contains(buf.String(), "read-only") {
		t.Fatalf("write error not logged: %q", buf.String())
	}
}

func TestFlag_NilKV(t *testing.T) {
	f := NewFlag(context.Background(), nil, ThemeLightKey, nil)
	if !f.Value() {
		t.Fatalf("Value = false, want default true")
	}
	f.Set(context.Background(), false)
	if f.Value() {
		t.Fatalf("Value = true after Set(false)")
	}
	if f.Key() != ThemeLightKey {
		t.Fatalf("Key = %q", f.Key())
	}
}

func ptr(s string) *string { return &s }
