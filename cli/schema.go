package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qumopa/qumopa/core/config"
	"github.com/urfave/cli/v3"
)

func NewSchemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "print the JSON schema of the qumopa config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "write the schema to a file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			schema := config.GetJsonSchema()

			if out := cmd.String("out"); out != "" {
				return writeJSONFile(out, schema, "Schema written to %s")
			}

			serialized, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(serialized))
			return nil
		},
	}
}
