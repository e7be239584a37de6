package service

import (
	"context"
	"errors"

	"github.com/wricardo/battleship/game/engine"
)

var (
	ErrNoActiveMatch = errors.New("no active match")
	ErrWrongPhase    = errors.New("operation not allowed in this phase")
)

// GameService defines all match operations
type GameService interface {
	// Match Management
	StartMatch(ctx context.Context, configName string) (*MatchInfo, error)
	GetMatch(ctx context.Context) (*MatchInfo, error)

	// Game Operations
	PlaceShip(ctx context.Context, coordinates string) (*PlacementResult, error)
	Fire(ctx context.Context, target string) (*ShotResult, error)

	// Game State
	RenderBoard(ctx context.Context, player int, fogOfWar bool) (string, error)
	GetShotHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}
