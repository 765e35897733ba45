package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/optionbook/renderer"
	"github.com/google/subcommands"
)

type matrixCmd struct{}

func (*matrixCmd) Name() string     { return "matrix" }
func (*matrixCmd) Synopsis() string { return "display the user-by-option ownership matrix" }
func (*matrixCmd) Usage() string {
	return `obk matrix

  Displays the full ownership matrix: one row per option, one column per
  user, a cell per held quantity. The matrix is recomputed from the book on
  every call.
`
}

func (c *matrixCmd) SetFlags(f *flag.FlagSet) {}

func (c *matrixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MatrixMarkdown(book.MatrixView()))
	return subcommands.ExitSuccess
}
