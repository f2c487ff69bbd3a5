package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Fetch.TimeoutSec != 30 {
		t.Errorf("Default fetch timeout = %d, want 30", cfg.Fetch.TimeoutSec)
	}
	if cfg.Server.Address != "127.0.0.1:5000" {
		t.Errorf("Default server address = %q", cfg.Server.Address)
	}
	if cfg.Server.History.Enable {
		t.Error("History enabled by default")
	}
	if !cfg.Document.IndentJSON {
		t.Error("Expected indented JSON by default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  output_name_template: "{{ .Framework }}/{{ .SourceFile }}"
  file_name_transliterate: true
fetch:
  timeout_sec: 5
server:
  address: "0.0.0.0:8080"
  history:
    enable: true
    path: ` + filepath.Join(tmpDir, "history.db") + `
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.OutputNameTemplate != "{{ .Framework }}/{{ .SourceFile }}" {
		t.Errorf("OutputNameTemplate = %q, template was expanded or lost", cfg.Document.OutputNameTemplate)
	}
	if !cfg.Document.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if cfg.Fetch.TimeoutSec != 5 {
		t.Errorf("TimeoutSec = %d, want 5", cfg.Fetch.TimeoutSec)
	}
	if cfg.Server.Address != "0.0.0.0:8080" {
		t.Errorf("Address = %q", cfg.Server.Address)
	}
	if !cfg.Server.History.Enable {
		t.Error("Expected history to be enabled")
	}
	// values absent from the file keep defaults
	if cfg.Server.CORSOrigin != "*" {
		t.Errorf("CORSOrigin = %q, want default *", cfg.Server.CORSOrigin)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nno_such_section:\n  key: value\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("LoadConfiguration() expected error for unknown fields")
	}
}

func TestLoadConfiguration_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()

	cases := []struct {
		name, content string
	}{
		{"bad version", "version: 2\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
		{"bad timeout", "version: 1\nfetch:\n  timeout_sec: 0\n"},
		{"bad address", "version: 1\nserver:\n  address: not-an-address\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, strings.ReplaceAll(c.name, " ", "-")+".yaml")
			if err := os.WriteFile(configPath, []byte(c.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Errorf("LoadConfiguration() expected error for %s", c.name)
			}
		})
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("Prepare() output missing version: %s", data)
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(out), "user_agent:") {
		t.Errorf("Dump() output missing fetch section: %s", out)
	}
}
