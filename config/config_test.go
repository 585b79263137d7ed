package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oronp/talk-to-figma-mcp/paths"
)

// setupTestSettings points HOME at a temp dir so Load() reads from a
// fresh location, and clears the PORT override.
func setupTestSettings(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("PORT", "")
	paths.Reset()
	t.Cleanup(paths.Reset)
	return tmpDir
}

func TestLoad_NoFile(t *testing.T) {
	setupTestSettings(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := s.GetPort(); got != DefaultPort {
		t.Errorf("GetPort = %d, want %d", got, DefaultPort)
	}
	if got := s.GetServerHost(); got != DefaultServerHost {
		t.Errorf("GetServerHost = %q, want %q", got, DefaultServerHost)
	}
	if got := s.GetCommandTimeout(); got != 30*time.Second {
		t.Errorf("GetCommandTimeout = %v, want 30s", got)
	}
	if s.GetDebug() {
		t.Error("GetDebug should default to false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	home := setupTestSettings(t)

	configDir := filepath.Join(home, ".talk-to-figma")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "port: 4000\nserver_host: figma-relay.example.com\ncommand_timeout_sec: 60\ndebug: true\n"
	if err := os.WriteFile(filepath.Join(configDir, "settings.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := s.GetPort(); got != 4000 {
		t.Errorf("GetPort = %d, want 4000", got)
	}
	if got := s.GetServerHost(); got != "figma-relay.example.com" {
		t.Errorf("GetServerHost = %q, want figma-relay.example.com", got)
	}
	if got := s.GetCommandTimeout(); got != 60*time.Second {
		t.Errorf("GetCommandTimeout = %v, want 60s", got)
	}
	if !s.GetDebug() {
		t.Error("GetDebug should be true")
	}
}

func TestLoad_PortEnvOverride(t *testing.T) {
	home := setupTestSettings(t)

	configDir := filepath.Join(home, ".talk-to-figma")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "settings.yaml"), []byte("port: 4000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "5055")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := s.GetPort(); got != 5055 {
		t.Errorf("GetPort = %d, want 5055 (PORT env should win)", got)
	}
}

func TestLoad_InvalidPortEnvIgnored(t *testing.T) {
	setupTestSettings(t)
	t.Setenv("PORT", "not-a-number")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := s.GetPort(); got != DefaultPort {
		t.Errorf("GetPort = %d, want default %d when PORT is unparseable", got, DefaultPort)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	home := setupTestSettings(t)

	configDir := filepath.Join(home, ".talk-to-figma")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "settings.yaml"), []byte("port: [not valid\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load should fail on malformed settings file")
	}
}

func TestValidate_BadPort(t *testing.T) {
	s := &Settings{Port: 70000}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject port 70000")
	}

	s = &Settings{Port: -1}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject negative port")
	}
}

func TestSaveAndReload(t *testing.T) {
	setupTestSettings(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s.SetPort(4100)
	s.SetServerHost("relay.internal")
	s.SetDebug(true)

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if got := reloaded.GetPort(); got != 4100 {
		t.Errorf("GetPort after reload = %d, want 4100", got)
	}
	if got := reloaded.GetServerHost(); got != "relay.internal" {
		t.Errorf("GetServerHost after reload = %q, want relay.internal", got)
	}
	if !reloaded.GetDebug() {
		t.Error("GetDebug after reload should be true")
	}
}

func TestWSBaseURL(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{"default localhost", "", 0, "ws://localhost:3055"},
		{"localhost custom port", "localhost", 4000, "ws://localhost:4000"},
		{"loopback ip", "127.0.0.1", 3055, "ws://127.0.0.1:3055"},
		{"remote host drops port", "figma-relay.example.com", 3055, "wss://figma-relay.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{ServerHost: tt.host, Port: tt.port}
			if got := s.WSBaseURL(); got != tt.want {
				t.Errorf("WSBaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
