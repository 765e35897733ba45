package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/optionbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion: exits by itself when invoked by the shell.
	completion().Complete("obk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"add-user", "del-user", "users",
		"add-option", "del-option", "options", "quote",
		"set", "ownerships", "matrix",
		"fmt", "serve", "assist", "topic",
		"help", "flags",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{Sub: sub}
}
