package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/kappa-go/internal/cli/config"
	"github.com/yndnr/kappa-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Print the config file path",
				Action: configPath,
			},
			{
				Name:  "init",
				Usage: "Write a default config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt := getRuntime(c)
	if rt == nil {
		return fmt.Errorf("cli not initialized")
	}

	cfg := rt.currentConfig()
	formatter := output.NewFormatter(output.FormatYAML)
	if output.Format(cfg.Output) == output.FormatJSON {
		formatter = output.NewFormatter(output.FormatJSON)
	}
	return formatter.Format(c.App.Writer, config.Redacted(cfg))
}

func configPath(c *cli.Context) error {
	rt := getRuntime(c)
	if rt == nil {
		return fmt.Errorf("cli not initialized")
	}

	fmt.Fprintln(c.App.Writer, rt.configPath)
	return nil
}

func configInit(c *cli.Context) error {
	rt := getRuntime(c)
	if rt == nil {
		return fmt.Errorf("cli not initialized")
	}

	if _, err := os.Stat(rt.configPath); err == nil && !c.Bool("force") {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", rt.configPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config file %s: %w", rt.configPath, err)
	}

	if err := config.Save(config.Default(), rt.configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s\n", rt.configPath)
	return nil
}
