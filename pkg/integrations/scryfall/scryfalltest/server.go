// Package scryfalltest provides an in-process fake of the Scryfall named-card
// endpoint for tests.
package scryfalltest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pyregraph/pkg/integrations/scryfall"
)

// Server answers GET /cards/named?fuzzy= from an in-memory card list.
//
// A query matches a card when it equals the card name case-insensitively,
// or failing that when it is a case-insensitive substring of exactly one
// name. Anything else is a 404, like Scryfall's ambiguous-match answer.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	cards    []scryfall.Card
	failures map[string][]int
	requests map[string]int
}

// NewServer starts a fake server preloaded with cards and closes it when the
// test ends.
func NewServer(t testing.TB, cards ...scryfall.Card) *Server {
	t.Helper()
	s := &Server{
		failures: make(map[string][]int),
		requests: make(map[string]int),
	}
	s.cards = append(s.cards, cards...)

	r := chi.NewRouter()
	r.Get("/cards/named", s.handleNamed)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Card builds a scryfall.Card with both optional fields present.
func Card(name, typeLine string, cmc float64) scryfall.Card {
	return scryfall.Card{Name: name, TypeLine: &typeLine, CMC: &cmc}
}

// Add registers more cards.
func (s *Server) Add(cards ...scryfall.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append(s.cards, cards...)
}

// Fail makes the next queries for query answer with the given statuses, in
// order, before normal matching resumes.
func (s *Server) Fail(query string, statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[query] = append(s.failures[query], statuses...)
}

// Requests returns how many times query was requested.
func (s *Server) Requests(query string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[query]
}

// TotalRequests returns the number of named-card requests served.
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.requests {
		n += c
	}
	return n
}

func (s *Server) handleNamed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("fuzzy")

	s.mu.Lock()
	s.requests[query]++
	if pending := s.failures[query]; len(pending) > 0 {
		s.failures[query] = pending[1:]
		s.mu.Unlock()
		writeError(w, pending[0])
		return
	}
	card, ok := s.match(query)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(card)
}

func (s *Server) match(query string) (scryfall.Card, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return scryfall.Card{}, false
	}
	for _, c := range s.cards {
		if strings.ToLower(c.Name) == q {
			return c, true
		}
	}
	var found []scryfall.Card
	for _, c := range s.cards {
		if strings.Contains(strings.ToLower(c.Name), q) {
			found = append(found, c)
		}
	}
	if len(found) != 1 {
		return scryfall.Card{}, false
	}
	return found[0], true
}

func writeError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"object":  "error",
		"status":  status,
		"code":    strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_"),
		"details": http.StatusText(status),
	})
}
