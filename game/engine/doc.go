// Package engine provides the core rules of a two-player Battleship game.
//
// The engine package implements:
//   - Coordinate parsing ("A1".."J10") and reading-order comparison
//   - Ship placement with axis, length and spacing validation
//   - Shot resolution and sunk-ship detection
//   - A turn coordinator that routes play between two boards
//   - Text rendering of a board, with or without fog of war
//
// Core Types:
//
// Battlefield owns one player's 10x10 board. Game holds the two Battlefields
// and tracks whose turn it is. GameConfig carries player names and the texts
// a front end prints; it is validated with ValidateGameConfig.
//
// Usage:
//
//	p1 := engine.NewBattlefield("Player 1")
//	p2 := engine.NewBattlefield("Player 2")
//	game := engine.NewGame(p1, p2)
//
//	if err := p1.PlaceShip("A1 A5", engine.AircraftCarrier); err != nil {
//		fmt.Println("Error!", err)
//	}
//
//	outcome, err := game.Opponent().Fire("A1")
//	if err == nil && outcome.Sunk {
//		fmt.Println("You sank a ship!")
//	}
//	game.SwitchTurn()
//
// Game Rules:
//
// Each player places an aircraft carrier (5), a battleship (4), a submarine
// (3), a cruiser (3) and a destroyer (2) on straight horizontal or vertical
// segments. Ships may not overlap or touch, not even diagonally. Players then
// take turns firing at the other board; the first player to sink all five
// enemy ships wins.
//
// Errors:
//
// Invalid input never panics and never changes a board. Operations return a
// *RuleError whose kind is ErrInvalidCoordinate, ErrPlacementRule or
// ErrAdjacency and whose message is meant for the player.
package engine
