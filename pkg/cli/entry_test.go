package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runExecute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecuteEvalFlag(t *testing.T) {
	code, out, errOut := runExecute(t, "-e", "x = 1 + 2")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != "x = 3\n" {
		t.Errorf("output = %q, want %q", out, "x = 3\n")
	}
}

func TestExecuteEvalRuntimeError(t *testing.T) {
	code, _, errOut := runExecute(t, "-e", "x = 1 / 0")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "division by zero") {
		t.Errorf("stderr = %q, want it to mention division by zero", errOut)
	}
}

func TestExecuteEvalParseError(t *testing.T) {
	code, _, errOut := runExecute(t, "-e", "x = }")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "<eval>:1:") {
		t.Errorf("stderr = %q, want a positioned diagnostic", errOut)
	}
}

func TestExecuteSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.hs")
	source := "double = \\x -> x * 2\nr = double 21\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runExecute(t, path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	want := "double = <fun>\nr = 42\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, _, errOut := runExecute(t, path)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "not a source file") {
		t.Errorf("stderr = %q, want an extension complaint", errOut)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	code, _, errOut := runExecute(t, filepath.Join(t.TempDir(), "absent.hs"))
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "cannot read") {
		t.Errorf("stderr = %q, want a read error", errOut)
	}
}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.hs", true},
		{"lib.mhs", true},
		{"main.go", false},
		{"hs", false},
	}
	for _, tt := range tests {
		if got := isSourceFile(tt.path); got != tt.want {
			t.Errorf("isSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
