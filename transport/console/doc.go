// Package console provides the terminal transport for Battleship.
//
// A Console reads one line per action from an io.Reader and writes prompts
// and boards to an io.Writer, driving a service.GameService through a whole
// hotseat match:
//
//   - Placement: each player is shown their board and asked for the two
//     end coordinates of every ship in fleet order. A rejected placement
//     prints "Error! <reason> <try again>" and asks again.
//   - Hand-over: after a player's fleet is placed, and after every shot
//     that does not end the match, the pass-turn message is printed and the
//     console waits for a line so the other player can take the keyboard.
//   - Combat: the shooter sees the opponent's board with ships hidden, a
//     separator line, then their own board.
//
// Run returns nil when a fleet is sunk, ErrInputClosed when the input ends
// first, and ctx.Err() when the context is cancelled between reads.
//
// Usage:
//
//	c := console.New(gameService, os.Stdin, os.Stdout, logger)
//	if err := c.Run(ctx, "classic"); err != nil {
//		log.Fatal(err)
//	}
package console
