package service

import (
	"time"

	"github.com/wricardo/battleship/game/engine"
)

// Phase is the stage a match is in
type Phase string

const (
	PhasePlacement Phase = "placement"
	PhaseCombat    Phase = "combat"
	PhaseFinished  Phase = "finished"
)

// MatchInfo provides information about the active match
type MatchInfo struct {
	ID            string             `json:"id"`
	ConfigName    string             `json:"config_name"`
	CreatedAt     time.Time          `json:"created_at"`
	Phase         Phase              `json:"phase"`
	Players       []string           `json:"players"`
	CurrentIndex  int                `json:"current_index"`
	CurrentPlayer string             `json:"current_player"`
	NextShip      string             `json:"next_ship,omitempty"` // Full name of the ship to place, placement phase only
	ShipsPlaced   [2]int             `json:"ships_placed"`
	ShipsSunk     [2]int             `json:"ships_sunk"`
	Winner        string             `json:"winner,omitempty"`
	GameConfig    *engine.GameConfig `json:"game_config"`
}

// PlacementResult contains the result of a ship placement
type PlacementResult struct {
	Success    bool       `json:"success"`
	Player     string     `json:"player"`
	Ship       string     `json:"ship"`
	Reason     string     `json:"reason,omitempty"` // Player-facing explanation when Success is false
	Err        error      `json:"-"`                // Rule kind, match with errors.Is
	TurnPassed bool       `json:"turn_passed"`      // The player just placed their last ship
	Match      *MatchInfo `json:"match"`
}

// ShotResult contains the result of a shot
type ShotResult struct {
	Success    bool                `json:"success"`
	Shooter    string              `json:"shooter"`
	Outcome    *engine.ShotOutcome `json:"outcome,omitempty"`
	Message    string              `json:"message,omitempty"`
	Reason     string              `json:"reason,omitempty"`
	Err        error               `json:"-"`
	Events     []GameEvent         `json:"events,omitempty"`
	TurnPassed bool                `json:"turn_passed"`
	Match      *MatchInfo          `json:"match"`
}

// GameEvent represents an event that occurred during combat
type GameEvent struct {
	Type      string    `json:"type"` // "hit", "miss", "sunk", "repeat", "victory"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target,omitempty"`
}

// ShotRecord is one entry of the shot history
type ShotRecord struct {
	Seq       int       `json:"seq"`
	Shooter   string    `json:"shooter"`
	Target    string    `json:"target"`
	Hit       bool      `json:"hit"`
	Sunk      bool      `json:"sunk"`
	Repeat    bool      `json:"repeat"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOptions configures shot history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated shot history
type HistoryResponse struct {
	Shots       []ShotRecord `json:"shots"`
	TotalShots  int          `json:"total_shots"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	HasNext     bool         `json:"has_next"`
	HasPrevious bool         `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string   `json:"filename"`
	ConfigID    string   `json:"config_id"` // The identifier to use for match creation
	Name        string   `json:"name"`      // Display name
	Description string   `json:"description"`
	Players     []string `json:"players"`
}
