// Package server exposes the book over a small JSON HTTP API.
//
// The API is the thin glue a polling front end talks to: every endpoint maps
// one-to-one onto a book operation, and the matrix endpoint is recomputed on
// every GET so clients may poll it at arbitrary frequency.
package server

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/etnz/optionbook"
	"github.com/shopspring/decimal"
)

// Server serves one book.
type Server struct {
	book *optionbook.Book
}

// New creates a server around an existing book.
func New(book *optionbook.Book) *Server {
	return &Server{book: book}
}

// Handler returns the route table.
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", s.createUser)
	mux.HandleFunc("GET /api/users", s.listUsers)
	mux.HandleFunc("DELETE /api/users/{id}", s.deleteUser)

	mux.HandleFunc("POST /api/options", s.createOption)
	mux.HandleFunc("GET /api/options", s.listOptions)
	mux.HandleFunc("DELETE /api/options/{id}", s.deleteOption)

	mux.HandleFunc("PUT /api/ownership", s.setOwnership)
	mux.HandleFunc("GET /api/ownership", s.listOwnerships)

	mux.HandleFunc("GET /api/matrix", s.matrix)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	u, err := s.book.CreateUser(req.Name)
	if err != nil {
		bookError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, u)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.book.Users())
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := s.book.DeleteUser(id); err != nil {
		bookError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbol     string  `json:"symbol"`
		Kind       string  `json:"kind"`
		Strike     float64 `json:"strike"`
		Expiration string  `json:"expiration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	kind, err := optionbook.ParseKind(req.Kind)
	if err != nil {
		bookError(w, err)
		return
	}
	if math.IsNaN(req.Strike) || math.IsInf(req.Strike, 0) {
		errorResponse(w, http.StatusBadRequest, "strike must be a finite number")
		return
	}
	expiration, err := optionbook.ParseDate(req.Expiration)
	if err != nil {
		bookError(w, err)
		return
	}
	o, err := s.book.CreateOption(req.Symbol, kind, decimal.NewFromFloat(req.Strike), expiration)
	if err != nil {
		bookError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, o)
}

func (s *Server) listOptions(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.book.Options())
}

func (s *Server) deleteOption(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid option id")
		return
	}
	if err := s.book.DeleteOption(id); err != nil {
		bookError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setOwnership(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   int64 `json:"user_id"`
		OptionID int64 `json:"option_id"`
		Quantity int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.book.SetOwnership(req.UserID, req.OptionID, req.Quantity); err != nil {
		bookError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listOwnerships(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.book.Ownerships())
}

func (s *Server) matrix(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.book.MatrixView())
}

// bookError maps the book's two error kinds onto HTTP statuses.
func bookError(w http.ResponseWriter, err error) {
	switch {
	case optionbook.IsValidation(err):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case optionbook.IsNotFound(err):
		errorResponse(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("cannot encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, msg string) {
	jsonResponse(w, status, map[string]string{"error": msg})
}
