package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles the minuteadder command into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	_, file, _, _ := runtime.Caller(0)
	root := filepath.Dir(filepath.Dir(file))

	bin := filepath.Join(t.TempDir(), "minuteadder")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/minuteadder")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// runBinary runs the binary with an isolated HOME and returns stdout, stderr and the exit code.
func runBinary(t *testing.T, bin string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "MINUTEADDER_COLOR=false")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("failed to run binary: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

func TestBinary(t *testing.T) {
	bin := buildBinary(t)

	t.Run("examples", func(t *testing.T) {
		out, _, code := runBinary(t, bin)
		if code != 0 {
			t.Fatalf("exit code %d", code)
		}
		for _, want := range []string{"12:00 AM", "11:59 PM", "12:33 PM", "5:53 AM", "9:00 PM"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("add", func(t *testing.T) {
		out, _, code := runBinary(t, bin, "add", "1:00 AM", "--", "-61")
		if code != 0 {
			t.Fatalf("exit code %d", code)
		}
		if strings.TrimSpace(out) != "11:59 PM" {
			t.Errorf("got %q, want 11:59 PM", out)
		}
	})

	t.Run("invalid input exits non-zero", func(t *testing.T) {
		_, stderr, code := runBinary(t, bin, "add", "00:00 AM", "1")
		if code != 1 {
			t.Errorf("exit code %d, want 1", code)
		}
		if !strings.HasPrefix(stderr, "error: ") {
			t.Errorf("unexpected stderr %q", stderr)
		}
	})

	t.Run("config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		content := "[[samples]]\ntime = \"11:59 AM\"\nminutes = 1\n"
		if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		out, _, code := runBinary(t, bin, "--config", configPath, "examples")
		if code != 0 {
			t.Fatalf("exit code %d", code)
		}
		if !strings.Contains(out, "11:59 AM + 1 minutes = 12:00 PM") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})
}
