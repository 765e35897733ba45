package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/optionbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addOptionCmd holds the flags for the 'add-option' subcommand.
type addOptionCmd struct {
	symbol     string
	kind       string
	strike     string
	expiration string
}

func (*addOptionCmd) Name() string     { return "add-option" }
func (*addOptionCmd) Synopsis() string { return "add a new option contract to the book" }
func (*addOptionCmd) Usage() string {
	return `obk add-option -s <symbol> -k <call|put> -x <strike> -e <expiration>

  Adds a new option contract definition:
  - symbol: the underlying ticker (e.g., "AAPL").
  - kind: "call" or "put".
  - strike: the strike price, a non-negative number.
  - expiration: the expiration date (e.g., "2025-06-20"). Past dates are
    accepted; recording expired contracts is legitimate.

  Definitions are immutable: to change one, delete it and recreate it.
`
}

func (c *addOptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Underlying symbol (required)")
	f.StringVar(&c.kind, "k", "", "Contract kind, call or put (required)")
	f.StringVar(&c.strike, "x", "", "Strike price (required)")
	f.StringVar(&c.expiration, "e", "", "Expiration date (required)")
}

func (c *addOptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := optionbook.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	strike, err := decimal.NewFromString(c.strike)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid strike %q: %v\n", c.strike, err)
		return subcommands.ExitUsageError
	}
	expiration, err := optionbook.ParseDate(c.expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	o, err := book.CreateOption(c.symbol, kind, strike, expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added option %d %s\n", o.ID, o.Label())
	return subcommands.ExitSuccess
}
