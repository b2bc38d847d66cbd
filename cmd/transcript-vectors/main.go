package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	app = cli.NewApp()
	log = logrus.WithField("process", "transcript-vectors")
)

func init() {
	app.Name = "transcript-vectors"
	app.Usage = "generate and verify transcript conformance vectors"
	app.Flags = []cli.Flag{VerbosityFlag}
	app.Before = setVerbosity
	app.Commands = []cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "runs the built-in scenarios and writes their challenges",
			Flags:   []cli.Flag{OutFlag},
			Action:  generateAction,
		},
		{
			Name:    "verify",
			Aliases: []string{"v"},
			Usage:   "replays a vector file and checks every expected challenge",
			Flags:   []cli.Flag{InFlag},
			Action:  verifyAction,
		},
	}
}

func main() {
	defer handlePanic()

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		log.WithError(fmt.Errorf("%+v", r)).Errorln("Application panic")
		os.Exit(2)
	}
}
