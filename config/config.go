package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oronp/talk-to-figma-mcp/paths"
)

const (
	// DefaultPort is the port the WebSocket relay listens on.
	DefaultPort = 3055

	// DefaultServerHost is the host the MCP server connects to.
	DefaultServerHost = "localhost"

	// DefaultCommandTimeoutSec is how long to wait for a command response
	// from the Figma plugin before giving up.
	DefaultCommandTimeoutSec = 30
)

// Settings holds the application configuration, loaded from the settings
// file with environment variable overrides applied on top.
type Settings struct {
	Port              int    `yaml:"port,omitempty"`                // Relay listen port
	ServerHost        string `yaml:"server_host,omitempty"`         // Relay host the MCP server connects to
	CommandTimeoutSec int    `yaml:"command_timeout_sec,omitempty"` // Per-command response timeout in seconds
	Debug             bool   `yaml:"debug,omitempty"`               // Enable debug logging

	mu       sync.RWMutex
	filePath string
}

// Load reads the settings from disk, or returns defaults if the file
// doesn't exist. The PORT environment variable overrides the file value.
func Load() (*Settings, error) {
	path, err := paths.SettingsFilePath()
	if err != nil {
		return nil, err
	}

	s := &Settings{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	}

	s.applyEnv()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// applyEnv overlays environment variables on top of file settings.
// Called during Load() before the Settings is shared across goroutines.
func (s *Settings) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.Port = port
		}
	}
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port: %d", s.Port)
	}
	if s.CommandTimeoutSec < 0 {
		return fmt.Errorf("invalid command timeout: %d", s.CommandTimeoutSec)
	}
	return nil
}

// Save writes the settings to disk
func (s *Settings) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := paths.ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// SetFilePath sets the settings file path (for testing).
func (s *Settings) SetFilePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
}

// GetPort returns the relay listen port, defaulting to 3055
func (s *Settings) GetPort() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Port <= 0 {
		return DefaultPort
	}
	return s.Port
}

// SetPort sets the relay listen port
func (s *Settings) SetPort(port int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Port = port
}

// GetServerHost returns the relay host, defaulting to "localhost"
func (s *Settings) GetServerHost() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ServerHost == "" {
		return DefaultServerHost
	}
	return s.ServerHost
}

// SetServerHost sets the relay host
func (s *Settings) SetServerHost(host string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ServerHost = host
}

// GetCommandTimeout returns the per-command timeout, defaulting to 30s
func (s *Settings) GetCommandTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.CommandTimeoutSec <= 0 {
		return DefaultCommandTimeoutSec * time.Second
	}
	return time.Duration(s.CommandTimeoutSec) * time.Second
}

// GetDebug returns whether debug logging is enabled
func (s *Settings) GetDebug() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Debug
}

// SetDebug sets whether debug logging is enabled
func (s *Settings) SetDebug(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Debug = enabled
}

// WSBaseURL returns the WebSocket URL for the configured host.
// Localhost connections use ws:// with the port; any other host is
// assumed to sit behind TLS termination and gets wss:// with no port.
func (s *Settings) WSBaseURL() string {
	host := s.GetServerHost()
	if host == "localhost" || host == "127.0.0.1" {
		return fmt.Sprintf("ws://%s:%d", host, s.GetPort())
	}
	return fmt.Sprintf("wss://%s", host)
}
