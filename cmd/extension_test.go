package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// installExtension writes a shell script named tsx-<name> in a directory added to PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	installExtension(t, "hello", `echo "$1 $TSX_FILE"`+"\nexit 3\n")
	t.Setenv(EnvFile, "gains.csv")
	out := captureOutput(t)

	found, code := RunExtension("hello", []string{"world"})
	if !found {
		t.Fatal("RunExtension(hello) not found")
	}
	if code != 3 {
		t.Errorf("RunExtension(hello) exit code = %d, want 3", code)
	}
	if got, want := strings.TrimSpace(out.String()), "world gains.csv"; got != want {
		t.Errorf("RunExtension(hello) output = %q, want %q", got, want)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("nope", nil); found || code != 0 {
		t.Errorf("RunExtension(nope) = %v, %d, want false, 0", found, code)
	}
}

// captureOutput redirects the command output to a buffer for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var b bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &b, &b
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return &b
}
