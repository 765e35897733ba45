package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/optionbook/renderer"
	"github.com/google/subcommands"
)

type ownershipsCmd struct{}

func (*ownershipsCmd) Name() string     { return "ownerships" }
func (*ownershipsCmd) Synopsis() string { return "list the raw ownership records" }
func (*ownershipsCmd) Usage() string {
	return `obk ownerships

  Lists every ownership record, sorted by option id then user id. Pairs
  without a record are not listed: absence means a quantity of 0.
`
}

func (c *ownershipsCmd) SetFlags(f *flag.FlagSet) {}

func (c *ownershipsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OwnershipsMarkdown(book.Ownerships()))
	return subcommands.ExitSuccess
}
