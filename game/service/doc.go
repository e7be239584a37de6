// Package service provides the business logic layer for Battleship.
//
// The service package implements:
//   - Match lifecycle (placement, combat, finished)
//   - Configuration lookup for new matches
//   - Turn passing after each fleet and each valid shot
//   - Shot history tracking with pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level match
// operations. ConfigManager supplies game configurations.
//
// Architecture:
//
// The service layer sits between the console transport and the game engine.
// It owns one match at a time: two battlefields and the engine.Game turn
// coordinator. Rule violations (bad coordinates, illegal placements) are not
// Go errors at this level; they come back as results with Success=false, a
// player-facing Reason and the engine error kind in Err, and the match state
// is left as it was. Calling an operation in the wrong phase returns
// ErrWrongPhase.
//
// Usage:
//
//	configMgr, _ := config.NewManager("configs", logger)
//	gameService := service.NewGameService(configMgr, logger)
//
//	info, err := gameService.StartMatch(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Placement: each call places the current player's next ship
//	placed, err := gameService.PlaceShip(ctx, "A1 A5")
//
//	// Combat: each valid shot passes the turn until a fleet is sunk
//	shot, err := gameService.Fire(ctx, "C7")
//
// Concurrency:
//
// A GameService drives a single hotseat match and is not safe for
// concurrent use.
package service
