// Package cmd implements the CLI application to manage an option book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/optionbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addUserCmd{}, "users")
	c.Register(&delUserCmd{}, "users")
	c.Register(&usersCmd{}, "users")

	c.Register(&addOptionCmd{}, "options")
	c.Register(&delOptionCmd{}, "options")
	c.Register(&optionsCmd{}, "options")
	c.Register(&quoteCmd{}, "options")

	c.Register(&setCmd{}, "ownership")
	c.Register(&ownershipsCmd{}, "ownership")
	c.Register(&matrixCmd{}, "ownership")

	c.Register(&fmtCmd{}, "book")
	c.Register(&serveCmd{}, "book")
	c.Register(&assistCmd{}, "book")
	c.Register(&topicCmd{}, "book")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the book file (JSONL format)")

// DecodeBook loads the book from the app book file.
func DecodeBook() (*optionbook.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting with an empty book instead")
		return optionbook.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book file %q: %w", *bookFile, err)
	}
	defer f.Close()

	book, err := optionbook.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode book file %q: %w", *bookFile, err)
	}
	return book, nil
}

// EncodeBook writes the book back into the app book file in canonical form.
func EncodeBook(book *optionbook.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("cannot open book file %q for writing: %w", *bookFile, err)
	}
	defer f.Close()

	if err := optionbook.Encode(f, book); err != nil {
		return fmt.Errorf("cannot write book file %q: %w", *bookFile, err)
	}
	return nil
}
