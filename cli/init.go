package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core/config"
	"github.com/qumopa/qumopa/core/errs"
	"github.com/urfave/cli/v3"
)

func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "write the default " + config.DefaultConfigFileName + " to the project directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite an existing " + config.DefaultConfigFileName,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			dir, err := projectDirForCommand(cmd)
			if err != nil {
				return err
			}

			path, err := config.WriteDefault(dir, cmd.Bool("force"))
			if err != nil {
				return errs.Wrap(errs.KindConfigCopy, err, "Unable to write default config")
			}

			log.Infof("Wrote %s", path)
			return nil
		},
	}
}
