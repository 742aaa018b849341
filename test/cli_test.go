package test_test

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	cliPath   string
	buildErr  error
)

// buildCLI builds the buildcfg CLI binary once per test run
func buildCLI(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "buildcfg-cli")
		if err != nil {
			buildErr = err
			return
		}
		cliPath = filepath.Join(dir, "buildcfg")
		cmd := exec.Command("go", "build", "-o", cliPath, "../cmd/buildcfg") // #nosec G204 -- test code with controlled input
		if output, err := cmd.CombinedOutput(); err != nil {
			buildErr = errors.New(string(output))
		}
	})

	if buildErr != nil {
		t.Fatalf("Failed to build CLI: %v", buildErr)
	}
	return cliPath
}

// runCLI runs the binary in dir and returns stdout, stderr and the exit code
func runCLI(t *testing.T, dir string, env []string, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(buildCLI(t), args...) // #nosec G204 -- test code with controlled input
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run CLI: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

// TestCLI_Help tests help output for all commands
func TestCLI_Help(t *testing.T) {
	commands := []string{"", "resolve", "verify", "variants"}

	for _, cmd := range commands {
		t.Run("help_"+cmd, func(t *testing.T) {
			args := []string{"--help"}
			if cmd != "" {
				args = []string{cmd, "--help"}
			}

			stdout, stderr, code := runCLI(t, t.TempDir(), nil, args...)
			if code != 0 && code != 2 {
				t.Errorf("Help exited with unexpected code: %d", code)
			}
			if !strings.Contains(stdout+stderr, "Usage") {
				t.Errorf("Expected usage information in help output, got:\n%s%s", stdout, stderr)
			}
		})
	}
}

// TestCLI_Resolve_NoPropertiesFile resolves with defaults only
func TestCLI_Resolve_NoPropertiesFile(t *testing.T) {
	stdout, stderr, code := runCLI(t, t.TempDir(), nil, "resolve", "--format", "json")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	cfg := doc["default_config"].(map[string]interface{})
	if cfg["version_code"] != float64(1) || cfg["version_name"] != "1.0" {
		t.Errorf("default_config = %v, want version 1 / 1.0", cfg)
	}
	if !strings.Contains(stderr, "release keystore not configured") {
		t.Errorf("expected keystore warning on stderr, got:\n%s", stderr)
	}
}

// TestCLI_Resolve_InvalidVersionCode checks the fatal exit path
func TestCLI_Resolve_InvalidVersionCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "local.properties"), []byte("flutter.versionCode=abc\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, stderr, code := runCLI(t, dir, nil, "resolve")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "invalid version code") {
		t.Errorf("stderr = %q, want invalid version code", stderr)
	}
}

// TestCLI_Resolve_WriteAndVerify writes a descriptor to disk and verifies the checksum
func TestCLI_Resolve_WriteAndVerify(t *testing.T) {
	dir := t.TempDir()
	props := "flutter.versionCode=9\nflutter.versionName=3.1.0\nstoreFile=upload.jks\nstorePassword=hunter2\n"
	if err := os.WriteFile(filepath.Join(dir, "local.properties"), []byte(props), 0600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "build", "descriptor.yml")

	_, stderr, code := runCLI(t, dir, []string{"BUILDCFG_LOG_LEVEL=warn"}, "resolve", "--output", out)
	if code != 0 {
		t.Fatalf("resolve exit code = %d, stderr:\n%s", code, stderr)
	}

	data, err := os.ReadFile(out) // #nosec G304 -- out is in the test temp dir
	if err != nil {
		t.Fatalf("descriptor not written: %v", err)
	}
	if !strings.Contains(string(data), "version_code: 9") {
		t.Errorf("descriptor missing version code:\n%s", data)
	}
	if strings.Contains(string(data), "hunter2") {
		t.Error("descriptor leaks store password")
	}

	stdout, stderr, code := runCLI(t, dir, nil, "verify", out)
	if code != 0 {
		t.Fatalf("verify exit code = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "OK") {
		t.Errorf("verify stdout = %q", stdout)
	}

	if err := os.WriteFile(out, append(data, '#'), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, code := runCLI(t, dir, nil, "verify", "--quiet", out); code != 1 {
		t.Errorf("verify after tampering exit code = %d, want 1", code)
	}
}

// TestCLI_Resolve_SignedWithPassphrase signs with an encrypted key and verifies the signature
func TestCLI_Resolve_SignedWithPassphrase(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "local.properties"), []byte("flutter.versionCode=4\nstoreFile=upload.jks\n"), 0600); err != nil {
		t.Fatal(err)
	}
	privKey, pubKey := writeKeyPair(t, dir, []byte("ci-passphrase"))
	out := filepath.Join(dir, "build", "descriptor.yml")

	_, stderr, code := runCLI(t, dir, []string{"BUILDCFG_SIGN_PASSPHRASE=wrong"},
		"resolve", "--output", out, "--sign-key", privKey)
	if code != 1 {
		t.Errorf("resolve with wrong passphrase exit code = %d, want 1, stderr:\n%s", code, stderr)
	}

	_, stderr, code = runCLI(t, dir, []string{"BUILDCFG_SIGN_PASSPHRASE=ci-passphrase"},
		"resolve", "--output", out, "--sign-key", privKey)
	if code != 0 {
		t.Fatalf("resolve exit code = %d, stderr:\n%s", code, stderr)
	}
	if _, err := os.Stat(out + ".asc"); err != nil {
		t.Fatalf("signature not written: %v", err)
	}

	stdout, stderr, code := runCLI(t, dir, nil, "verify", "--key", pubKey, out)
	if code != 0 {
		t.Fatalf("verify exit code = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "signature") {
		t.Errorf("verify stdout = %q, want signature check reported", stdout)
	}

	data, err := os.ReadFile(out) // #nosec G304 -- out is in the test temp dir
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(out, append(data, '#'), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, code := runCLI(t, dir, nil, "verify", "--quiet", "--key", pubKey, out); code != 1 {
		t.Errorf("verify after tampering exit code = %d, want 1", code)
	}
}

// TestCLI_UsageErrors checks flag validation
func TestCLI_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"bogus"}},
		{"bad format", []string{"resolve", "--format", "toml"}},
		{"bad variant", []string{"resolve", "--variant", "staging"}},
		{"sign without output", []string{"resolve", "--sign-key", "key.asc"}},
		{"verify without path", []string{"verify"}},
		{"bad log level", []string{"resolve", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, code := runCLI(t, t.TempDir(), nil, tt.args...); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
		})
	}
}

// TestCLI_Variants lists the fixed variant flags
func TestCLI_Variants(t *testing.T) {
	stdout, _, code := runCLI(t, t.TempDir(), nil, "variants")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"release", "debug", "VARIANT"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("variants output missing %q:\n%s", want, stdout)
		}
	}
}
