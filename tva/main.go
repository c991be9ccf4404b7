package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/ashvinbashyam3/trade-visualization-agr/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
