package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// delUserCmd holds the flags for the 'del-user' subcommand.
type delUserCmd struct {
	id int64
}

func (*delUserCmd) Name() string     { return "del-user" }
func (*delUserCmd) Synopsis() string { return "delete a user and its ownership records" }
func (*delUserCmd) Usage() string {
	return `obk del-user -id <id>

  Deletes a user. Every ownership record for this user is removed with it.
  The id is not reused afterwards.
`
}

func (c *delUserCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "User id (required)")
}

func (c *delUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.DeleteUser(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted user %d\n", c.id)
	return subcommands.ExitSuccess
}
