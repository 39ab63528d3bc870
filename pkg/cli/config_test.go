package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func intp(v int) *int { return &v }

func TestLoadConfigWithPath_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadConfigWithPath("foam", path)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	if cfg.AppName != "foam" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "foam")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if len(cfg.Profiles) != 0 {
		t.Errorf("Profiles = %v, want empty", cfg.Profiles)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config file should not be created on load, stat err = %v", err)
	}
}

func TestLoadConfigWithPath_Parse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `current_profile: small
profiles:
  small:
    capacity: 64
    write_size: 16
    read_size: 16
    histogram: true
  big:
    cycles: 10
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigWithPath("foam", path)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	if cfg.CurrentProfile != "small" {
		t.Errorf("CurrentProfile = %q, want %q", cfg.CurrentProfile, "small")
	}

	p, err := cfg.ResolveProfile("")
	if err != nil {
		t.Fatalf("ResolveProfile error: %v", err)
	}
	if p.Name != "small" || *p.Capacity != 64 || *p.WriteSize != 16 || !*p.Histogram {
		t.Errorf("profile = %+v", p)
	}
	if p.Cycles != nil {
		t.Errorf("Cycles = %v, want nil", *p.Cycles)
	}

	big, err := cfg.ResolveProfile("big")
	if err != nil {
		t.Fatalf("ResolveProfile(big) error: %v", err)
	}
	if *big.Cycles != 10 {
		t.Errorf("Cycles = %d, want 10", *big.Cycles)
	}

	if got := cfg.ListProfiles(); !reflect.DeepEqual(got, []string{"big", "small"}) {
		t.Errorf("ListProfiles() = %v", got)
	}
}

func TestLoadConfigWithPath_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("profiles: [1, 2"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigWithPath("foam", path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Profiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foam", "config.yaml")
	cfg, err := LoadConfigWithPath("foam", path)
	if err != nil {
		t.Fatal(err)
	}

	if p, err := cfg.ResolveProfile(""); p != nil || err != nil {
		t.Errorf("ResolveProfile with nothing set = %v, %v", p, err)
	}
	if err := cfg.SetProfile("", &Profile{}); err == nil {
		t.Error("SetProfile with empty name should fail")
	}
	if err := cfg.SetProfile("fast", &Profile{Capacity: intp(128)}); err != nil {
		t.Fatalf("SetProfile error: %v", err)
	}
	if err := cfg.UseProfile("fast"); err != nil {
		t.Fatalf("UseProfile error: %v", err)
	}
	if err := cfg.UseProfile("missing"); err == nil {
		t.Error("UseProfile(missing) should fail")
	}

	reloaded, err := LoadConfigWithPath("foam", path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.CurrentProfile != "fast" {
		t.Errorf("CurrentProfile = %q, want %q", reloaded.CurrentProfile, "fast")
	}
	p, err := reloaded.GetProfile("fast")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if p.Name != "fast" || *p.Capacity != 128 {
		t.Errorf("profile = %+v", p)
	}

	if err := reloaded.DeleteProfile("fast"); err != nil {
		t.Fatalf("DeleteProfile error: %v", err)
	}
	if reloaded.CurrentProfile != "" {
		t.Errorf("CurrentProfile = %q after delete, want empty", reloaded.CurrentProfile)
	}
	if err := reloaded.DeleteProfile("fast"); err == nil {
		t.Error("DeleteProfile twice should fail")
	}
}

func TestPaths(t *testing.T) {
	p := &Paths{AppName: "foam", HomeDir: "/home/test"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"BaseDir", p.BaseDir(), "/home/test/.foam"},
		{"AppDir", p.AppDir(), "/home/test/.foam/foam"},
		{"ConfigFile", p.ConfigFile(), "/home/test/.foam/foam/config.yaml"},
		{"ResultsDir", p.ResultsDir(), "/home/test/.foam/foam/results"},
		{"ResultPath", p.ResultPath("run.json"), "/home/test/.foam/foam/results/run.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestPaths_EnsureResultsDir(t *testing.T) {
	p := &Paths{AppName: "foam", HomeDir: t.TempDir()}
	if err := p.EnsureResultsDir(); err != nil {
		t.Fatalf("EnsureResultsDir error: %v", err)
	}
	info, err := os.Stat(p.ResultsDir())
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("results path is not a directory")
	}
}
