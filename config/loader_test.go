package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppConfigFrom(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
routing:
  osrmURL: http://localhost:5000
  profile: traffic-aware
  timeoutMS: 2000
guidance:
  stepAdvanceMeters: 25
  offRouteMeters: 80
  announceThresholds: [500, 200]
`)
	if err := LoadAppConfigFrom(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("port not loaded, got %d", Config.Server.Port)
	}
	if Config.Routing.OSRMURL != "http://localhost:5000" {
		t.Errorf("osrmURL not loaded, got %q", Config.Routing.OSRMURL)
	}
	if Config.Routing.Profile != "traffic-aware" {
		t.Errorf("profile not loaded, got %q", Config.Routing.Profile)
	}
	if Config.Routing.RerouteTimeoutMS != DefaultRerouteTimeoutMS {
		t.Errorf("reroute timeout default not applied, got %d", Config.Routing.RerouteTimeoutMS)
	}
	if got := Config.Guidance.AnnounceThresholds; len(got) != 2 || got[0] != 500 || got[1] != 200 {
		t.Errorf("announce thresholds not loaded, got %v", got)
	}
}

func TestLoadAppConfigDefaultsWhenFileMissing(t *testing.T) {
	if err := LoadAppConfigFrom(filepath.Join(t.TempDir(), "nope.yml")); err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if Config.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, Config.Server.Port)
	}
	if Config.Routing.OSRMURL != DefaultOSRMURL {
		t.Errorf("expected default OSRM URL, got %q", Config.Routing.OSRMURL)
	}
	if Config.Routing.TimeoutMS != DefaultTimeoutMS {
		t.Errorf("expected default timeout, got %d", Config.Routing.TimeoutMS)
	}
}

func TestLoadAppConfigEnvOverride(t *testing.T) {
	t.Setenv("NAV_SERVER_PORT", "8088")
	t.Setenv("NAV_OSRM_URL", "http://osrm.internal:5000")

	path := writeConfig(t, "server:\n  port: 9090\n")
	if err := LoadAppConfigFrom(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Config.Server.Port != 8088 {
		t.Errorf("env override lost, got %d", Config.Server.Port)
	}
	if Config.Routing.OSRMURL != "http://osrm.internal:5000" {
		t.Errorf("env override lost, got %q", Config.Routing.OSRMURL)
	}
}

func TestLoadAppConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative port", "server:\n  port: -1\n"},
		{"bad profile", "routing:\n  profile: fastest\n"},
		{"bad URL", "routing:\n  osrmURL: not-a-url\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			if err := LoadAppConfigFrom(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
