package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rezasaadat1/armhf-cross-compile/pkg/app"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/config"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/logger"
	"github.com/urfave/cli/v3"
)

// RunCommand creates the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Run the periodic counter loop until interrupted (default)",
		Action: RunAction,
	}
}

// RunAction is also the root command's default action, so a bare invocation
// behaves like `run`.
func RunAction(ctx context.Context, c *cli.Command) error {
	a, cleanup, err := buildApp(c)
	if err != nil {
		return err
	}
	defer cleanup()
	return a.Run(ctx)
}

// buildApp loads the configuration, points the process logger at the right
// sink and assembles the App. The returned cleanup closes the log file, if
// one was opened.
func buildApp(c *cli.Command) (*app.App, func(), error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if f := c.String("log-file"); f != "" {
		cfg.LogFile = f
	}
	if lvl := c.String("level"); lvl != "" {
		if _, err := logger.ParseLevel(lvl); err != nil {
			return nil, nil, err
		}
		cfg.LogLevel = lvl
	}

	log := logger.Default()
	cleanup := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		cleanup = func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	}

	a := app.New(cfg, log)
	if _, err := os.Stat(configPath); err == nil {
		a.ConfigPath = configPath
	}
	return a, cleanup, nil
}
