package scryfall

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/integrations"
)

// DefaultBaseURL is the public Scryfall API root.
const DefaultBaseURL = "https://api.scryfall.com"

// Card is the subset of a Scryfall card object this module reads.
//
// TypeLine and CMC are pointers because Scryfall omits them for some
// objects (reversible cards keep them on their faces only).
type Card struct {
	Name     string   `json:"name"`
	TypeLine *string  `json:"type_line,omitempty"`
	CMC      *float64 `json:"cmc,omitempty"`
}

// Client provides access to the Scryfall API.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Scryfall client. An empty baseURL selects
// DefaultBaseURL; tests point it at a fake server.
func NewClient(opts integrations.Options, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(opts),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// NamedFuzzy looks up the card best matching name.
//
// Returns:
//   - the matched card on success
//   - [errors.ErrCodeInvalidInput] without a request when name is too long
//     or contains control characters
//   - an error with [errors.ErrCodeNotFound] when Scryfall has no unique match
//   - [errors.ErrCodeNetwork] or [errors.ErrCodeRateLimited] for HTTP failures
func (c *Client) NamedFuzzy(ctx context.Context, name string) (*Card, error) {
	if err := errors.ValidateCardName(name); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/cards/named?fuzzy=%s", c.baseURL, integrations.URLEncode(name))

	var card Card
	if err := c.Get(ctx, url, &card); err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "no card matches %q", name)
		}
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	return &card, nil
}
