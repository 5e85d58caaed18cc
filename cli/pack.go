package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core"
	"github.com/qumopa/qumopa/internal/alert"
	"github.com/urfave/cli/v3"
)

// NewPackCommand takes the project flags from the root command.
func NewPackCommand() *cli.Command {
	return &cli.Command{
		Name:                  "pack",
		Aliases:               []string{"p"},
		Usage:                 "pack the project directory into <directory>.zip",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "result-out",
				Usage: "output file for the JSON serialized pack result",
			},
		},
		Action: PackAction,
	}
}

// PackAction is also the root command's action, so running qumopa without
// arguments packs the working directory.
func PackAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)

	dir, err := projectDirForCommand(cmd)
	if err != nil {
		return err
	}

	log.Debugf("Packing %s", dir)

	result, err := core.Pack(dir, packOptionsForCommand(cmd))
	if err != nil {
		return err
	}

	core.PrettyPrintPackResult(os.Stdout, result, core.PrintOptions{
		Version:   Version,
		ShowFiles: cmd.Bool("show-files") || result.DryRun,
		NoColor:   !alert.IsInteractive(os.Stdout),
	})

	if resultOut := cmd.String("result-out"); resultOut != "" {
		if err := writeJSONFile(resultOut, result, "Pack result written to %s"); err != nil {
			return err
		}
	}

	return nil
}
