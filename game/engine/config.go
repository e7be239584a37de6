package engine

import (
	"fmt"
	"strings"
)

// ValidateGameConfig validates a game configuration before it is used to start a match
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	// Validate players
	if len(config.Players) != 2 {
		return fmt.Errorf("config validation: exactly 2 players are required, got %d", len(config.Players))
	}
	for i, player := range config.Players {
		if strings.TrimSpace(player) == "" {
			return fmt.Errorf("config validation: player %d has no name", i+1)
		}
	}
	if config.Players[0] == config.Players[1] {
		return fmt.Errorf("config validation: player names must differ, both are %q", config.Players[0])
	}

	// Validate messages
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}
	if config.Messages.Hit == "" || config.Messages.Miss == "" || config.Messages.Sank == "" {
		return fmt.Errorf("config validation: messages.hit, messages.miss and messages.sank are required")
	}

	// Validate format strings
	formats := map[string]string{
		"place_ships":       config.Messages.PlaceShips,
		"enter_coordinates": config.Messages.EnterCoordinates,
		"your_turn":         config.Messages.YourTurn,
	}
	for key, value := range formats {
		if countVerbs(value) != 1 || strings.Count(strings.ReplaceAll(value, "%%", ""), "%s") != 1 {
			return fmt.Errorf("config validation: messages.%s must contain exactly one %%s and no other %% verbs (write %%%% for a literal %%)", key)
		}
	}

	return nil
}

// countVerbs counts formatting directives in s, not counting escaped "%%"
func countVerbs(s string) int {
	return strings.Count(strings.ReplaceAll(s, "%%", ""), "%")
}

// DefaultConfig returns the classic two-player configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Two players, one keyboard",
		Players:     []string{"Player 1", "Player 2"},
		Messages: Messages{
			PlaceShips:       "%s, place your ships on the game field",
			EnterCoordinates: "Enter the coordinates of the %s:",
			PassTurn:         "Press Enter and pass the move to another player",
			YourTurn:         "%s, it's your turn:",
			Hit:              "You hit a ship!",
			Miss:             "You missed!",
			Sank:             "You sank a ship!",
			Victory:          "You sank the last ship. You won. Congratulations!",
			TryAgain:         "Try again:",
		},
	}
}
