package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	userID   int64
	optionID int64
	quantity int64
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set the quantity a user holds of an option" }
func (*setCmd) Usage() string {
	return `obk set -u <user-id> -o <option-id> -q <quantity>

  Records the absolute quantity a user holds of an option, replacing any
  previous value for the pair. Setting 0 clears the record. There is no
  increment: read the current quantity with 'obk ownerships' first.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.userID, "u", 0, "User id (required)")
	f.Int64Var(&c.optionID, "o", 0, "Option id (required)")
	f.Int64Var(&c.quantity, "q", 0, "Absolute quantity held, 0 to clear")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.SetOwnership(c.userID, c.optionID, c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Set ownership (%d,%d) to %d\n", c.userID, c.optionID, c.quantity)
	return subcommands.ExitSuccess
}
