package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// InfoCommand creates the info command
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print system and user information, then exit",
		Action: func(ctx context.Context, c *cli.Command) error {
			a, cleanup, err := buildApp(c)
			if err != nil {
				return err
			}
			defer cleanup()
			a.PrintInfo()
			return nil
		},
	}
}
