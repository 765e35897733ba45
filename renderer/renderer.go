// Package renderer turns book data into markdown tables for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/optionbook"
	"github.com/shopspring/decimal"
)

// Strike formats a strike price as USD money.
func Strike(d decimal.Decimal) string {
	cur := *money.New(0, money.USD).Currency()
	dec := d.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// quantity renders a held quantity, with "-" for an empty cell.
func quantity(q int64) string {
	if q == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", q)
}

// optionLabel is the left column of option rows: symbol, kind, strike, expiration.
func optionLabel(o optionbook.Option) string {
	label := fmt.Sprintf("%s %s %s %s", o.Symbol, o.Kind, Strike(o.Strike), o.Expiration)
	if o.Expired(optionbook.Today()) {
		label += " (expired)"
	}
	return label
}

// UsersMarkdown renders the user registry.
func UsersMarkdown(users []optionbook.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Users\n\n")
	fmt.Fprintln(&b, "| Id | Name |")
	fmt.Fprintln(&b, "|---:|:---|")
	for _, u := range users {
		fmt.Fprintf(&b, "| %d | %s |\n", u.ID, u.Name)
	}
	return b.String()
}

// OptionsMarkdown renders the option registry.
func OptionsMarkdown(options []optionbook.Option) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Options\n\n")
	fmt.Fprintln(&b, "| Id | Symbol | Kind | Strike | Expiration |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|:---|")
	for _, o := range options {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", o.ID, o.Symbol, o.Kind, Strike(o.Strike), o.Expiration)
	}
	return b.String()
}

// OwnershipsMarkdown renders the raw ledger records.
func OwnershipsMarkdown(owns []optionbook.Ownership) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ownerships\n\n")
	fmt.Fprintln(&b, "| User | Option | Quantity |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	for _, o := range owns {
		fmt.Fprintf(&b, "| %d | %d | %d |\n", o.UserID, o.OptionID, o.Quantity)
	}
	return b.String()
}

// MatrixMarkdown renders the user-by-option matrix. Column headers come from
// v.Users; column i of every row is the quantity held by v.Users[i].
func MatrixMarkdown(v optionbook.MatrixView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Matrix\n\n")

	fmt.Fprint(&b, "| Option |")
	for _, u := range v.Users {
		fmt.Fprintf(&b, " %s |", u.Name)
	}
	fmt.Fprintln(&b)
	fmt.Fprint(&b, "|:---|")
	for range v.Users {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for _, row := range v.Rows {
		fmt.Fprintf(&b, "| %s |", optionLabel(row.Option))
		for _, q := range row.Quantities {
			fmt.Fprintf(&b, " %s |", quantity(q))
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
