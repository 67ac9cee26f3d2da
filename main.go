package main

import (
	"context"
	"log"
	"os"

	"github.com/rezasaadat1/armhf-cross-compile/cmd"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/config"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "crosscompile",
		Usage: "Cross-compilation starter: periodic counter loop with leveled logging",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Append log lines to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Minimum log level (trace, debug, info, warn, error, fatal)",
			},
		},
		// Bare invocation runs the counter loop.
		Action: cmd.RunAction,
		Commands: []*cli.Command{
			cmd.RunCommand(),
			cmd.InfoCommand(),
			cmd.InitCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
