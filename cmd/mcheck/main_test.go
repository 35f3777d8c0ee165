package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunCheckParsesValidTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.c", "int add(int a, int b) { return a + b; }\n")
	writeFile(t, dir, "point.c", "struct Point { int x; int y; };\n")

	st := &stats{}
	if err := walkAndCheck(t, testLogger(), dir, st); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if st.filesParsed != 2 {
		t.Fatalf("filesParsed = %d, want 2", st.filesParsed)
	}
	if st.filesFailed != 0 {
		t.Fatalf("filesFailed = %d, want 0", st.filesFailed)
	}
}

func TestRunCheckSkipsPreprocessorAndSkipListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "has_macro.c", "#define MAX(a,b) ((a)>(b)?(a):(b))\nint x;\n")
	writeFile(t, dir, "builtin_torture.c", "int y;\n")

	st := &stats{}
	if err := walkAndCheck(t, testLogger(), dir, st); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if st.filesSkipped != 2 {
		t.Fatalf("filesSkipped = %d, want 2 (the #define file and the skip-list file)", st.filesSkipped)
	}
	if st.filesParsed != 0 {
		t.Fatalf("filesParsed = %d, want 0", st.filesParsed)
	}
}

func TestRunCheckCountsParseFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.c", "int x = ;\n")

	st := &stats{}
	if err := walkAndCheck(t, testLogger(), dir, st); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if st.filesFailed != 1 {
		t.Fatalf("filesFailed = %d, want 1", st.filesFailed)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

// walkAndCheck drives checkFile the same way runCheck does, without
// runCheck's own stats logging, so tests can inspect st directly.
func walkAndCheck(t *testing.T, logger *slog.Logger, root string, st *stats) error {
	t.Helper()
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".c" {
			return nil
		}
		return checkFile(logger, false, st, path)
	})
}
