package main

import "github.com/urfave/cli"

var (
	// VerbosityFlag sets the log level.
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (debug, info, warn, error)",
		Value: "info",
	}
	// OutFlag is the file generated vectors are written to.
	OutFlag = cli.StringFlag{
		Name:  "out",
		Usage: "output file; the extension selects yaml, json or toml",
		Value: "vectors.yaml",
	}
	// InFlag is the vector file to verify.
	InFlag = cli.StringFlag{
		Name:  "in",
		Usage: "vector file to verify",
		Value: "vectors.yaml",
	}
)
