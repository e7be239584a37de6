package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/wricardo/battleship/game/service"
)

// ErrInputClosed is returned when the input ends before the match does
var ErrInputClosed = errors.New("input closed")

// errLineTooLong marks an input line longer than maxLineLength
var errLineTooLong = errors.New("input line too long")

const (
	// Separator is printed between the fogged opponent board and the player's own board
	Separator = "---------------------"

	maxLineLength = 4096
)

// inputLine is one line read from the input, or the error that ended reading
type inputLine struct {
	text string
	err  error
}

// Console plays a hotseat match over a line-oriented reader and writer
type Console struct {
	svc   service.GameService
	in    *bufio.Reader
	lines chan inputLine
	out   io.Writer
	log   log15.Logger
}

// New creates a console bound to a game service
func New(svc service.GameService, in io.Reader, out io.Writer, logger log15.Logger) *Console {
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	return &Console{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: logger.New("component", "console"),
	}
}

// Run starts a match with the named config and plays it to the end.
// It returns nil once a fleet has been sunk.
func (c *Console) Run(ctx context.Context, configName string) error {
	info, err := c.svc.StartMatch(ctx, configName)
	if err != nil {
		return err
	}

	c.lines = make(chan inputLine)
	go c.readInput(ctx, c.lines)

	if info, err = c.placement(ctx, info); err != nil {
		return err
	}
	return c.combat(ctx, info)
}

func (c *Console) placement(ctx context.Context, info *service.MatchInfo) (*service.MatchInfo, error) {
	msgs := info.GameConfig.Messages

	for info.Phase == service.PhasePlacement {
		player := info.CurrentIndex
		c.printf("%s\n\n", fmt.Sprintf(msgs.PlaceShips, info.CurrentPlayer))
		if err := c.printBoard(ctx, player, false); err != nil {
			return nil, err
		}

		for {
			c.printf("\n%s\n\n", fmt.Sprintf(msgs.EnterCoordinates, info.NextShip))

			result, err := c.placeNext(ctx, msgs.TryAgain)
			if err != nil {
				return nil, err
			}

			c.newline()
			if err := c.printBoard(ctx, player, false); err != nil {
				return nil, err
			}

			info = result.Match
			if result.TurnPassed {
				if err := c.passTurn(ctx, msgs.PassTurn); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	return info, nil
}

// placeNext reads lines until the current ship is placed
func (c *Console) placeNext(ctx context.Context, tryAgain string) (*service.PlacementResult, error) {
	for {
		line, err := c.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			c.printError("That line is too long.", tryAgain)
			continue
		}
		if err != nil {
			return nil, err
		}

		result, err := c.svc.PlaceShip(ctx, line)
		if err != nil {
			return nil, err
		}
		if result.Success {
			return result, nil
		}
		c.printError(result.Reason, tryAgain)
	}
}

func (c *Console) combat(ctx context.Context, info *service.MatchInfo) error {
	msgs := info.GameConfig.Messages

	for info.Phase == service.PhaseCombat {
		current := info.CurrentIndex
		if err := c.printBoard(ctx, 1-current, true); err != nil {
			return err
		}
		c.printf("%s\n", Separator)
		if err := c.printBoard(ctx, current, false); err != nil {
			return err
		}
		c.printf("\n%s\n\n", fmt.Sprintf(msgs.YourTurn, info.CurrentPlayer))

		result, err := c.fireNext(ctx, msgs.TryAgain)
		if err != nil {
			return err
		}

		c.printf("\n%s\n", result.Message)
		info = result.Match

		if result.TurnPassed {
			if err := c.passTurn(ctx, msgs.PassTurn); err != nil {
				return err
			}
		}
	}

	c.logSummary(ctx, info)
	return nil
}

// logSummary logs the shot totals of a finished match
func (c *Console) logSummary(ctx context.Context, info *service.MatchInfo) {
	shots, hits := 0, 0
	for page := 1; ; page++ {
		history, err := c.svc.GetShotHistory(ctx, service.HistoryOptions{Page: page, Limit: 100, Order: "asc"})
		if err != nil {
			c.log.Warn("shot history unavailable", "err", err)
			return
		}
		for _, shot := range history.Shots {
			shots++
			if shot.Shooter == info.Winner && shot.Hit {
				hits++
			}
		}
		if !history.HasNext {
			break
		}
	}

	c.log.Info("match over", "match", info.ID, "winner", info.Winner, "shots", shots, "winner_hits", hits)
}

// fireNext reads lines until a shot lands
func (c *Console) fireNext(ctx context.Context, tryAgain string) (*service.ShotResult, error) {
	for {
		line, err := c.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			c.printError("That line is too long.", tryAgain)
			continue
		}
		if err != nil {
			return nil, err
		}

		result, err := c.svc.Fire(ctx, line)
		if err != nil {
			return nil, err
		}
		if result.Success {
			return result, nil
		}
		c.printError(result.Reason, tryAgain)
	}
}

func (c *Console) passTurn(ctx context.Context, message string) error {
	c.printf("\n%s\n", message)
	_, err := c.readLine(ctx)
	if errors.Is(err, errLineTooLong) {
		return nil
	}
	return err
}

func (c *Console) printBoard(ctx context.Context, player int, fogOfWar bool) error {
	board, err := c.svc.RenderBoard(ctx, player, fogOfWar)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, board)
	return err
}

func (c *Console) printError(reason, tryAgain string) {
	c.printf("\nError! %s %s\n\n", reason, tryAgain)
}

// readLine waits for the next input line or for ctx to be done, whichever comes first
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		switch {
		case !ok || errors.Is(line.err, io.EOF):
			c.log.Debug("input closed")
			return "", ErrInputClosed
		case errors.Is(line.err, errLineTooLong):
			return "", line.err
		case line.err != nil:
			return "", fmt.Errorf("failed to read input: %w", line.err)
		}
		return strings.TrimSpace(line.text), nil
	}
}

// readInput feeds lines to readLine until the input fails or ctx is done.
// Run starts it on its own goroutine.
func (c *Console) readInput(ctx context.Context, lines chan<- inputLine) {
	defer close(lines)
	for {
		text, err := readBoundedLine(c.in, maxLineLength)
		select {
		case lines <- inputLine{text: text, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil && !errors.Is(err, errLineTooLong) {
			return
		}
	}
}

// readBoundedLine reads one line without its line ending. A line longer than
// limit is consumed whole and reported as errLineTooLong.
func readBoundedLine(r *bufio.Reader, limit int) (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) newline() {
	fmt.Fprintln(c.out)
}
