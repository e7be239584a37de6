package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/wricardo/battleship/game/engine"
)

// match holds the state of one hotseat game
type match struct {
	id        string
	configID  string
	config    *engine.GameConfig
	game      *engine.Game
	phase     Phase
	placed    [2]int
	history   []ShotRecord
	createdAt time.Time
	log       log15.Logger
}

// gameServiceImpl implements the GameService interface.
// It drives a single match and is not safe for concurrent use.
type gameServiceImpl struct {
	configs ConfigManager
	log     log15.Logger
	match   *match
}

// NewGameService creates a new game service instance
func NewGameService(configs ConfigManager, logger log15.Logger) GameService {
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	return &gameServiceImpl{
		configs: configs,
		log:     logger.New("component", "service"),
	}
}

// getConfigID returns the config_id for a given config name, used for consistent responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// StartMatch creates a new match, replacing any previous one
func (s *gameServiceImpl) StartMatch(ctx context.Context, configName string) (*MatchInfo, error) {
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use the configs command to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}
	if config == nil {
		config = engine.DefaultConfig()
	}
	if err := engine.ValidateGameConfig(config); err != nil {
		return nil, err
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	id := uuid.NewString()[:6]
	m := &match{
		id:       id,
		configID: configID,
		config:   config,
		game: engine.NewGame(
			engine.NewBattlefield(config.Players[0]),
			engine.NewBattlefield(config.Players[1]),
		),
		phase:     PhasePlacement,
		createdAt: time.Now(),
		log:       s.log.New("match", id),
	}
	s.match = m

	m.log.Info("match started", "config", configID, "players", strings.Join(config.Players, ","))
	return s.matchInfo(m), nil
}

// GetMatch returns information about the active match
func (s *gameServiceImpl) GetMatch(ctx context.Context) (*MatchInfo, error) {
	if s.match == nil {
		return nil, ErrNoActiveMatch
	}
	return s.matchInfo(s.match), nil
}

// PlaceShip places the current player's next ship from two coordinates such as "A1 A5"
func (s *gameServiceImpl) PlaceShip(ctx context.Context, coordinates string) (*PlacementResult, error) {
	m := s.match
	if m == nil {
		return nil, ErrNoActiveMatch
	}
	if m.phase != PhasePlacement {
		return nil, fmt.Errorf("%w: cannot place ships during %s", ErrWrongPhase, m.phase)
	}

	idx := m.game.CurrentIndex()
	board := m.game.Current()
	ship := engine.Fleet[m.placed[idx]]

	result := &PlacementResult{
		Player: board.Owner(),
		Ship:   ship.Name(),
	}

	if err := board.PlaceShip(coordinates, ship); err != nil {
		var ruleErr *engine.RuleError
		if !errors.As(err, &ruleErr) {
			return nil, err
		}
		m.log.Debug("placement rejected", "player", board.Owner(), "ship", ship.Name(), "input", coordinates, "err", ruleErr.Kind)
		result.Reason = ruleErr.Reason
		result.Err = ruleErr.Kind
		result.Match = s.matchInfo(m)
		return result, nil
	}

	m.placed[idx]++
	result.Success = true
	m.log.Debug("ship placed", "player", board.Owner(), "ship", ship.Name(), "at", coordinates)

	if m.placed[idx] == engine.FleetSize {
		m.game.SwitchTurn()
		result.TurnPassed = true
		if m.placed[0] == engine.FleetSize && m.placed[1] == engine.FleetSize {
			m.phase = PhaseCombat
			m.log.Info("fleets placed, combat begins", "first", m.game.Current().Owner())
		}
	}

	result.Match = s.matchInfo(m)
	return result, nil
}

// Fire shoots the opponent of the current player at a target such as "C7"
func (s *gameServiceImpl) Fire(ctx context.Context, target string) (*ShotResult, error) {
	m := s.match
	if m == nil {
		return nil, ErrNoActiveMatch
	}
	if m.phase != PhaseCombat {
		return nil, fmt.Errorf("%w: cannot fire during %s", ErrWrongPhase, m.phase)
	}

	shooter := m.game.Current().Owner()
	result := &ShotResult{Shooter: shooter}

	outcome, err := m.game.Opponent().Fire(target)
	if err != nil {
		var ruleErr *engine.RuleError
		if !errors.As(err, &ruleErr) {
			return nil, err
		}
		m.log.Debug("shot rejected", "player", shooter, "input", target)
		result.Reason = ruleErr.Reason
		result.Err = ruleErr.Kind
		result.Match = s.matchInfo(m)
		return result, nil
	}

	now := time.Now()
	result.Success = true
	result.Outcome = &outcome

	m.history = append(m.history, ShotRecord{
		Seq:       len(m.history) + 1,
		Shooter:   shooter,
		Target:    outcome.Target.String(),
		Hit:       outcome.Hit,
		Sunk:      outcome.Sunk,
		Repeat:    outcome.Repeat,
		Timestamp: now,
	})

	msgs := m.config.Messages
	addEvent := func(eventType, message string) {
		result.Events = append(result.Events, GameEvent{
			Type:      eventType,
			Message:   message,
			Timestamp: now,
			Target:    outcome.Target.String(),
		})
	}

	if outcome.Repeat {
		addEvent("repeat", fmt.Sprintf("%s was already shot", outcome.Target))
	}
	if outcome.Hit {
		addEvent("hit", msgs.Hit)
		result.Message = msgs.Hit
	} else {
		addEvent("miss", msgs.Miss)
		result.Message = msgs.Miss
	}
	if outcome.Sunk {
		addEvent("sunk", msgs.Sank)
		result.Message = msgs.Sank
	}

	m.log.Debug("shot fired", "player", shooter, "target", outcome.Target, "hit", outcome.Hit, "sunk", outcome.Sunk, "repeat", outcome.Repeat)

	if m.game.IsOngoing() {
		m.game.SwitchTurn()
		result.TurnPassed = true
	} else {
		m.phase = PhaseFinished
		addEvent("victory", msgs.Victory)
		result.Message = msgs.Victory
		m.log.Info("match finished", "winner", shooter, "shots", len(m.history))
	}

	result.Match = s.matchInfo(m)
	return result, nil
}

// RenderBoard renders the battlefield of a player (0 or 1)
func (s *gameServiceImpl) RenderBoard(ctx context.Context, player int, fogOfWar bool) (string, error) {
	if s.match == nil {
		return "", ErrNoActiveMatch
	}
	if player < 0 || player > 1 {
		return "", fmt.Errorf("player index %d out of range", player)
	}
	return engine.Render(s.match.game.Battlefield(player), fogOfWar), nil
}

// GetShotHistory returns paginated shot history
func (s *gameServiceImpl) GetShotHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error) {
	if s.match == nil {
		return nil, ErrNoActiveMatch
	}

	history := s.match.history
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var shots []ShotRecord
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			shots = append(shots, history[i])
		}
	} else if start < total {
		shots = append(shots, history[start:end]...)
	}

	if shots == nil {
		shots = []ShotRecord{}
	}

	return &HistoryResponse{
		Shots:       shots,
		TotalShots:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

func (s *gameServiceImpl) matchInfo(m *match) *MatchInfo {
	current := m.game.CurrentIndex()
	info := &MatchInfo{
		ID:            m.id,
		ConfigName:    m.configID,
		CreatedAt:     m.createdAt,
		Phase:         m.phase,
		Players:       append([]string(nil), m.config.Players...),
		CurrentIndex:  current,
		CurrentPlayer: m.game.Current().Owner(),
		ShipsPlaced:   m.placed,
		ShipsSunk: [2]int{
			m.game.Battlefield(0).ShipsSunk(),
			m.game.Battlefield(1).ShipsSunk(),
		},
		GameConfig: m.config,
	}
	if m.phase == PhasePlacement {
		info.NextShip = engine.Fleet[m.placed[current]].FullName()
	}
	if winner := m.game.Winner(); winner != nil {
		info.Winner = winner.Owner()
	}
	return info
}
