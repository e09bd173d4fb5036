package command

import "github.com/urfave/cli/v2"

// dropCommands returns the single-shot drop commands. Each runs one line
// through the same executor as the interactive prompt.
func dropCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "list",
			Usage:  "List all drops",
			Action: runDropCommand("list"),
		},
		{
			Name:            "view",
			Usage:           "Show drop details",
			ArgsUsage:       "NAME",
			SkipFlagParsing: true,
			Action:          runDropCommand("view"),
		},
		{
			Name:            "create",
			Usage:           "Create a drop",
			ArgsUsage:       "NAME PARAM SECRET TYPE STOCK",
			SkipFlagParsing: true,
			Action:          runDropCommand("create"),
		},
		{
			Name:            "edit",
			Usage:           "Change one field of a drop (name, param, secret, type, stock)",
			ArgsUsage:       "NAME FIELD VALUE",
			SkipFlagParsing: true,
			Action:          runDropCommand("edit"),
		},
		{
			Name:            "delete",
			Usage:           "Delete a drop",
			ArgsUsage:       "NAME",
			SkipFlagParsing: true,
			Action:          runDropCommand("delete"),
		},
	}
}

// runDropCommand executes name with the command's arguments and exits
// non-zero when it fails. Flag parsing is off so values like -5 reach the
// parser intact.
func runDropCommand(name string) cli.ActionFunc {
	return func(c *cli.Context) error {
		rt, err := connectedRuntime(c)
		if err != nil {
			return err
		}

		args := append([]string{name}, c.Args().Slice()...)
		if !rt.executor.Run(c.Context, args) {
			return cli.Exit("", 1)
		}
		return nil
	}
}
