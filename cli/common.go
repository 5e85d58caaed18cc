package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core"
	"github.com/urfave/cli/v3"
)

var Version string // This will be set by main

// rootFlags are defined once on the root command. Subcommands read them
// through the command lineage, before or after the subcommand name.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable verbose logging",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"C"},
			Usage:   "project directory to pack (default: current directory)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the qumopa config file, relative to the project directory",
		},
		&cli.StringSliceFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "extra pattern applied after the config's filter list (e.g. '!*.wav')",
		},
		&cli.BoolFlag{
			Name:  "no-seed",
			Usage: "do not write a default qumopa.toml when no config exists",
		},
		&cli.BoolFlag{
			Name:  "rooted",
			Usage: "store entries under a folder named after the project directory",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "resolve and show the archive contents without writing it",
		},
		&cli.BoolFlag{
			Name:  "show-files",
			Usage: "list every archived file",
		},
	}
}

// NewRootCommand builds the qumopa command. Without a subcommand it packs
// the project directory.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:                  "qumopa",
		Usage:                 "pack a mod directory into <directory>.zip",
		Description:           "Run without a command to pack the current directory.",
		Version:               Version,
		EnableShellCompletion: true,
		Flags:                 rootFlags(),
		Action:                PackAction,
		Commands: []*cli.Command{
			NewPackCommand(),
			NewListCommand(),
			NewInitCommand(),
			NewSchemaCommand(),
		},
	}
}

func setupLogging(cmd *cli.Command) {
	if cmd.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// projectDirForCommand returns the absolute project directory, --dir or the
// working directory.
func projectDirForCommand(cmd *cli.Command) (string, error) {
	dir := cmd.String("dir")
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

func packOptionsForCommand(cmd *cli.Command) *core.PackOptions {
	return &core.PackOptions{
		Version:        Version,
		ConfigFilePath: cmd.String("config"),
		NoSeed:         cmd.Bool("no-seed"),
		ExtraFilter:    cmd.StringSlice("filter"),
		Rooted:         cmd.Bool("rooted"),
		DryRun:         cmd.Bool("dry-run"),
	}
}

func writeJSONFile(path string, data interface{}, logMessage string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	serialized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0644); err != nil {
		return err
	}

	log.Debugf(logMessage, path)
	return nil
}
