package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/cli"
	"github.com/qumopa/qumopa/core/errs"
	"github.com/qumopa/qumopa/internal/alert"
)

var (
	version = "dev"
)

func main() {
	cli.Version = version

	if err := cli.NewRootCommand().Run(context.Background(), os.Args); err != nil {
		log.Debugf("%s: %+v", errs.KindOf(err), err)
		alert.Select(os.Stdin, os.Stderr).NotifyError(err)
		os.Exit(1)
	}
}
