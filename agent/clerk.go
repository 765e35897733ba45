package agent

import (
	"context"

	"github.com/etnz/optionbook"
	"github.com/etnz/optionbook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewClerk creates the expert in charge of the user's option book. Its tools
// are read-only: the clerk reports, it never mutates the book.
func NewClerk(book *optionbook.Book) *Expert {
	lib := []Function{listUsers(book), listOptions(book), ownershipMatrix(book)}

	return &Expert{
		Name: "Clerk",
		Description: `This is the Clerk. He keeps the option book: the participants,
		the option contract definitions, and who holds how much of what.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the clerk of the user's option book.
				You know how to use the Tools to extract the participants, the
				option contract definitions, and the ownership matrix.
				Pardon the user's approximative language and figure out what they
				meant; answer with figures taken from the tools, never invented.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// output wraps a markdown report into a function response.
func output(id, name, md string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": md,
		},
	}
}

func listUsers(book *optionbook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_users",
			Description: "List all participants of the option book, with their ids and names.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all participants.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return output(id, "list_users", renderer.UsersMarkdown(book.Users()))
		},
	}
}

func listOptions(book *optionbook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_options",
			Description: "List all option contract definitions: symbol, call or put, strike price and expiration date.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all option definitions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return output(id, "list_options", renderer.OptionsMarkdown(book.Options()))
		},
	}
}

func ownershipMatrix(book *optionbook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ownership_matrix",
			Description: "The full ownership matrix: one row per option, one column per participant, with the held quantity in each cell (0 means not held).",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted matrix of held quantities.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return output(id, "ownership_matrix", renderer.MatrixMarkdown(book.MatrixView()))
		},
	}
}
