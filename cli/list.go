package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/qumopa/qumopa/core"
	"github.com/urfave/cli/v3"
)

type listOutput struct {
	Config string   `json:"config,omitempty"`
	Files  []string `json:"files"`
}

func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		Aliases:               []string{"ls"},
		Usage:                 "print the files the filter selects, without packing",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format. one of: plain, json",
				Value: "plain",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file name",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			dir, err := projectDirForCommand(cmd)
			if err != nil {
				return err
			}

			resolved, err := core.ResolveFiles(dir, packOptionsForCommand(cmd))
			if err != nil {
				return err
			}

			var output string
			switch format := cmd.String("format"); format {
			case "plain":
				output = core.FormatFileList(resolved.Files)
			case "json":
				jsonBytes, err := json.MarshalIndent(listOutput{
					Config: resolved.Config.Source,
					Files:  resolved.Files.Sorted(),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("error marshaling file list: %w", err)
				}
				output = string(jsonBytes) + "\n"
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			if outFile := cmd.String("out"); outFile != "" {
				if err := os.WriteFile(outFile, []byte(output), 0644); err != nil {
					return fmt.Errorf("error writing to file: %w", err)
				}
				return nil
			}

			fmt.Print(output)
			return nil
		},
	}
}
