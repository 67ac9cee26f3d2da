package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/version"
	"github.com/urfave/cli/v3"
)

var (
	versionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	targetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// VersionCommand creates the version command
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println(versionStyle.Render(version.BuildVersion()))
			fmt.Println(targetStyle.Render("Build target: " + version.ArchitectureName()))
			return nil
		},
	}
}
