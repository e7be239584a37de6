package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/wricardo/battleship/game/engine"
	"gopkg.in/yaml.v3"
)

func createValidConfig() *engine.GameConfig {
	config := engine.DefaultConfig()
	config.Name = "Test Config"
	config.Description = "Test configuration"
	config.Players = []string{"Ann", "Bob"}
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	var data []byte
	var err error
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func writeRawFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	return path
}

func newTestManager(t *testing.T, dir string) *Manager {
	t.Helper()
	manager, err := NewManager(dir, nil)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return manager
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "classic", createValidConfig())

		logger := log15.New()
		logger.SetHandler(log15.DiscardHandler())

		manager, err := NewManager(dir, logger)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path", nil)
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory falls back to built-in default", func(t *testing.T) {
		manager := newTestManager(t, t.TempDir())

		def := manager.GetDefault()
		if def == nil {
			t.Fatal("Expected a default config")
		}
		if def.Name != "classic" {
			t.Errorf("Expected built-in classic default, got %q", def.Name)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	jsonConfig := createValidConfig()
	jsonConfig.Name = "From JSON"
	writeConfigFile(t, dir, "plain", jsonConfig)

	yamlConfig := createValidConfig()
	yamlConfig.Name = "From YAML"
	writeConfigFile(t, dir, "salty.yaml", yamlConfig)

	ymlConfig := createValidConfig()
	ymlConfig.Name = "From YML"
	writeConfigFile(t, dir, "short.yml", ymlConfig)

	manager := newTestManager(t, dir)

	tests := []struct {
		name     string
		expected string
	}{
		{"plain", "From JSON"},
		{"plain.json", "From JSON"},
		{"salty", "From YAML"},
		{"salty.yaml", "From YAML"},
		{"short", "From YML"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := manager.LoadConfig(test.name)
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}
			if config.Name != test.expected {
				t.Errorf("Expected name %q, got %q", test.expected, config.Name)
			}
			if config.Messages.Victory == "" {
				t.Error("Expected messages to be decoded")
			}
		})
	}

	t.Run("non-existent config", func(t *testing.T) {
		_, err := manager.LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	badPlayers := createValidConfig()
	badPlayers.Players = []string{"Solo"}
	writeConfigFile(t, dir, "solo", badPlayers)

	writeRawFile(t, dir, "broken.json", "{not json")
	writeRawFile(t, dir, "broken_yaml.yaml", "players: [unterminated")

	manager := newTestManager(t, dir)

	t.Run("validation failure", func(t *testing.T) {
		_, err := manager.LoadConfig("solo")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := manager.LoadConfig("broken"); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := manager.LoadConfig("broken_yaml"); err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestLoadConfig_Caching(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "cached", createValidConfig())

	manager := newTestManager(t, dir)

	first, err := manager.LoadConfig("cached")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Changing the file on disk must not affect the cached copy
	changed := createValidConfig()
	changed.Name = "Changed"
	writeConfigFile(t, dir, "cached", changed)

	second, err := manager.LoadConfig("cached")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if first != second {
		t.Error("Expected cached config pointer to be returned")
	}
	if second.Name != "Test Config" {
		t.Errorf("Expected cached name, got %q", second.Name)
	}

	// A fresh manager reads the file again
	third, err := newTestManager(t, dir).LoadConfig("cached")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if third.Name != "Changed" {
		t.Errorf("Expected new name 'Changed', got %q", third.Name)
	}
}

func TestListConfigs(t *testing.T) {
	dir := t.TempDir()

	alpha := createValidConfig()
	alpha.Name = "Alpha"
	alpha.Description = "First"
	writeConfigFile(t, dir, "alpha", alpha)

	beta := createValidConfig()
	beta.Name = "Beta"
	writeConfigFile(t, dir, "beta.yaml", beta)

	invalid := createValidConfig()
	invalid.Name = ""
	writeConfigFile(t, dir, "invalid", invalid)

	writeRawFile(t, dir, "notes.txt", "not a config")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	manager := newTestManager(t, dir)

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}

	if len(configs) != 2 {
		t.Fatalf("Expected 2 valid configs, got %d", len(configs))
	}

	if configs[0].ConfigID != "alpha" || configs[0].Name != "Alpha" || configs[0].Description != "First" {
		t.Errorf("Unexpected first config %+v", configs[0])
	}
	if configs[0].Filename != "alpha.json" {
		t.Errorf("Expected filename alpha.json, got %q", configs[0].Filename)
	}
	if configs[1].ConfigID != "beta" || configs[1].Filename != "beta.yaml" {
		t.Errorf("Unexpected second config %+v", configs[1])
	}
	if len(configs[1].Players) != 2 || configs[1].Players[0] != "Ann" {
		t.Errorf("Unexpected players %v", configs[1].Players)
	}
}

func TestGetDefault(t *testing.T) {
	t.Run("classic wins", func(t *testing.T) {
		dir := t.TempDir()

		aaa := createValidConfig()
		aaa.Name = "AAA"
		writeConfigFile(t, dir, "aaa", aaa)

		classic := createValidConfig()
		classic.Name = "Classic From Disk"
		writeConfigFile(t, dir, "classic", classic)

		manager := newTestManager(t, dir)
		if got := manager.GetDefault().Name; got != "Classic From Disk" {
			t.Errorf("Expected classic config as default, got %q", got)
		}
	})

	t.Run("first valid config without classic", func(t *testing.T) {
		dir := t.TempDir()

		broken := createValidConfig()
		broken.Players = nil
		writeConfigFile(t, dir, "aaa", broken)

		zed := createValidConfig()
		zed.Name = "Zed"
		writeConfigFile(t, dir, "zed", zed)

		manager := newTestManager(t, dir)
		if got := manager.GetDefault().Name; got != "Zed" {
			t.Errorf("Expected first valid config as default, got %q", got)
		}
	})
}

func TestSetDefault(t *testing.T) {
	dir := t.TempDir()

	custom := createValidConfig()
	custom.Name = "Custom"
	writeConfigFile(t, dir, "custom", custom)

	manager := newTestManager(t, dir)

	if err := manager.SetDefault("custom"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}
	if got := manager.GetDefault().Name; got != "Custom" {
		t.Errorf("Expected default 'Custom', got %q", got)
	}

	if err := manager.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
	if got := manager.GetDefault().Name; got != "Custom" {
		t.Errorf("Failed SetDefault must keep the previous default, got %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "ok.yml", createValidConfig())
	txt := writeRawFile(t, dir, "config.txt", "name: nope")

	if _, err := LoadFile(filepath.Join(dir, "ok.yml")); err != nil {
		t.Errorf("Expected valid file, got %v", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "absent.json")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
	if _, err := LoadFile(txt); err == nil {
		t.Error("Expected unsupported format error")
	}
}

func TestConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one", "two", "three"} {
		config := createValidConfig()
		config.Name = name
		writeConfigFile(t, dir, name, config)
	}

	manager := newTestManager(t, dir)

	var wg sync.WaitGroup
	errs := make(chan error, 30)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range []string{"one", "two", "three"} {
				if _, err := manager.LoadConfig(name); err != nil {
					errs <- err
				}
			}
			_ = manager.GetDefault()
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent load failed: %v", err)
	}
}
