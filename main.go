// Command battleship runs a two-player hotseat Battleship game in the terminal.
//
// It supports three commands:
//  1. "play" (default) – places both fleets and plays the match on one keyboard
//  2. "configs" – lists the game configurations found in the config directory
//  3. "validate" – checks configuration files and exits non-zero if any is invalid
//
// Flags control the config directory, the configuration to play, debug
// logging and version output. Every flag can also be set from the
// environment or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/inconshreveable/log15"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/battleship/game/config"
	"github.com/wricardo/battleship/game/service"
	"github.com/wricardo/battleship/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Battleship"
)

func init() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintf(cmd.Root().Writer, "%s v%s\n", AppName, cmd.Root().Version)
	}
}

// main loads the environment, wires signal handling and runs the CLI.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newApp builds the command tree bound to the given streams
func newApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "battleship",
		Usage:     "Two-player hotseat Battleship on a 10x10 grid",
		Version:   Version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "Directory containing game configurations",
				Sources: cli.EnvVars("BATTLESHIP_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration to play (defaults to classic)",
				Sources: cli.EnvVars("BATTLESHIP_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("BATTLESHIP_DEBUG"),
			},
		},
		Action: runPlay,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play a match on this terminal",
				Action: runPlay,
			},
			{
				Name:   "configs",
				Usage:  "List available game configurations",
				Action: runConfigs,
			},
			{
				Name:      "validate",
				Usage:     "Validate game configuration files",
				ArgsUsage: "<file>...",
				Action:    runValidate,
			},
		},
	}
}

// newLogger returns a logfmt logger on w, filtered at Info or Debug
func newLogger(w io.Writer, debug bool) log15.Logger {
	level := log15.LvlInfo
	if debug {
		level = log15.LvlDebug
	}

	logger := log15.New("app", "battleship")
	logger.SetHandler(log15.LvlFilterHandler(level, log15.StreamHandler(w, log15.LogfmtFormat())))
	return logger
}

// initializeServices creates the configuration manager and the game service.
// A non-empty configName becomes the default configuration for new matches.
func initializeServices(configDir, configName string, logger log15.Logger) (service.GameService, *config.Manager, error) {
	configMgr, err := config.NewManager(configDir, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	if configName != "" {
		if err := configMgr.SetDefault(configName); err != nil {
			return nil, nil, fmt.Errorf("config '%s': %w. Use the configs command to list available configurations", configName, err)
		}
	}

	return service.NewGameService(configMgr, logger), configMgr, nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()
	logger := newLogger(root.ErrWriter, cmd.Bool("debug"))

	gameService, _, err := initializeServices(cmd.String("config-dir"), cmd.String("config"), logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "version", Version, "config_dir", cmd.String("config-dir"))

	c := console.New(gameService, root.Reader, root.Writer, logger)
	err = c.Run(ctx, "")
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		logger.Info("match abandoned", "reason", err)
		return nil
	}
	return err
}

func runConfigs(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Root().ErrWriter, cmd.Bool("debug"))

	gameService, configMgr, err := initializeServices(cmd.String("config-dir"), cmd.String("config"), logger)
	if err != nil {
		return err
	}

	configs, err := gameService.ListConfigs(ctx)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if len(configs) == 0 {
		fmt.Fprintf(out, "No configurations in %s, the built-in classic game will be used\n", cmd.String("config-dir"))
		return nil
	}
	defaultName := configMgr.GetDefault().Name
	for _, cfg := range configs {
		marker := " "
		if cfg.Name == defaultName {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s %-20s %s\n", marker, cfg.ConfigID, cfg.Name, cfg.Description)
	}
	return nil
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("validate needs at least one file")
	}

	if !printValidation(cmd.Root().Writer, files) {
		return errors.New("some configurations have errors")
	}
	return nil
}
