package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/etnz/optionbook"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the latest spot price for an underlying symbol" }
func (*quoteCmd) Usage() string {
	return `obk quote <symbol>...

  Fetches the latest intraday price of each underlying symbol from a public
  quote service. Informational only: the book stores no prices.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required.")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	client := new(http.Client)
	for _, symbol := range f.Args() {
		val, err := optionbook.Spot(client, symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %.4f\n", symbol, val)
	}
	return status
}
