package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// delOptionCmd holds the flags for the 'del-option' subcommand.
type delOptionCmd struct {
	id int64
}

func (*delOptionCmd) Name() string     { return "del-option" }
func (*delOptionCmd) Synopsis() string { return "delete an option and its ownership records" }
func (*delOptionCmd) Usage() string {
	return `obk del-option -id <id>

  Deletes an option contract. Every ownership record for this option is
  removed with it. The id is not reused afterwards.
`
}

func (c *delOptionCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Option id (required)")
}

func (c *delOptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.DeleteOption(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted option %d\n", c.id)
	return subcommands.ExitSuccess
}
