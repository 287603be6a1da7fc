package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	rootCmd := NewRootCommand()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	code := run(rootCmd, args)
	return code, stdout.String(), stderr.String()
}

func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	want := map[string]bool{"validate": false, "version": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}
}

func TestRun_NoArguments(t *testing.T) {
	code, stdout, stderr := runRoot(t)

	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "no input files") {
		t.Errorf("stderr missing error: %q", stderr)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr missing usage: %q", stderr)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	code, _, stderr := runRoot(t, "--nope", "in.txt")

	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr missing usage: %q", stderr)
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runRoot(t, "version")

	if code != ExitOK {
		t.Errorf("exit code = %d, want %d", code, ExitOK)
	}
	if !strings.HasPrefix(stdout, "linesplit ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_ValidateFailureHasNoUsage(t *testing.T) {
	code, _, stderr := runRoot(t, "validate", filepath.Join(t.TempDir(), "absent.yaml"))

	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if strings.Contains(stderr, "Usage:") {
		t.Errorf("runtime failure should not print usage: %q", stderr)
	}
}

func TestRun_SplitWithUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("1\n-2\n0.25\nhello world\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "results")

	code, stdout, stderr := runRoot(t, "-o", out, "-p", "x_", "-f", filepath.Join(dir, "nope.txt"), in)

	if code != ExitOK {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitOK, stderr)
	}
	if !strings.Contains(stderr, "nope.txt") {
		t.Errorf("stderr does not name unreadable input: %q", stderr)
	}

	want := strings.Join([]string{
		"Integers count: 2",
		"Floats count: 1",
		"Strings count: 1",
		"Integers min: -2",
		"Integers max: 1",
		"Integers sum: -1",
		"Integers average: -0.5000000000",
		"Floats min: 0.25",
		"Floats max: 0.25",
		"Floats sum: 0.25",
		"Floats average: 0.2500000000",
		"Strings min length: 11",
		"Strings max length: 11",
	}, "\n") + "\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}

	data, err := os.ReadFile(filepath.Join(out, "x_strings.txt"))
	if err != nil {
		t.Fatalf("reading x_strings.txt: %v", err)
	}
	if string(data) != "hello world\n" {
		t.Errorf("x_strings.txt = %q", data)
	}
}
