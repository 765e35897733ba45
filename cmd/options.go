package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/optionbook/renderer"
	"github.com/google/subcommands"
)

type optionsCmd struct{}

func (*optionsCmd) Name() string     { return "options" }
func (*optionsCmd) Synopsis() string { return "list all options in the book" }
func (*optionsCmd) Usage() string {
	return `obk options

  Lists all option contract definitions, in the order they were created.
`
}

func (c *optionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *optionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OptionsMarkdown(book.Options()))
	return subcommands.ExitSuccess
}
