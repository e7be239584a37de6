// Package config provides configuration management for Battleship.
//
// The config package handles:
//   - Loading game configurations from JSON and YAML files
//   - Configuration validation
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations live in the configs directory as name.json,
// name.yaml or name.yml. Each configuration defines:
//   - The two player names, in turn order
//   - Every player-facing message (prompts, shot results, victory)
//
// Usage:
//
//	manager, err := config.NewManager("configs", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("salty")
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Default Selection:
//
// The default is "classic" when present, otherwise the first valid config
// in name order, otherwise the built-in engine.DefaultConfig().
package config
