package commands

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	cfgPath := setupTestEnv(t)

	stdout, _, code := runCmd(t, "--config", cfgPath, "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(stdout, "foam dev") {
		t.Fatalf("expected 'foam dev', got: %s", stdout)
	}
}

func TestVersionVerbose(t *testing.T) {
	cfgPath := setupTestEnv(t)

	stdout, _, code := runCmd(t, "--config", cfgPath, "-v", "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "config: "+cfgPath) {
		t.Fatalf("expected config path, got: %s", stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	cfgPath := setupTestEnv(t)

	stdout, _, code := runCmd(t, "--config", cfgPath, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, `"version"`) {
		t.Fatalf("expected JSON, got: %s", stdout)
	}
}
