package tmdb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redspace/tmdb-mcp-server/internal/config"
	"github.com/sirupsen/logrus"
)

// Doer issues a single HTTP request. Satisfied by *http.Client; tests
// substitute a stub so no real network access is needed.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the TMDB REST API. It holds the bearer credential and
// base URLs fixed at construction; all methods are safe for concurrent use.
type Client struct {
	doer         Doer
	token        string
	apiBaseURL   string
	imageBaseURL string
	log          *logrus.Entry
}

// NewClient builds a TMDB client from config. Pass nil as doer to use a
// default http.Client with the configured timeout.
func NewClient(cfg config.Config, doer Doer, log *logrus.Entry) *Client {
	if doer == nil {
		timeout := cfg.HTTPTimeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &Client{
		doer:         doer,
		token:        cfg.Token,
		apiBaseURL:   cfg.APIBaseURL,
		imageBaseURL: cfg.ImageBaseURL,
		log:          log,
	}
}

// SearchActorID resolves an actor name to the first matching TMDB person
// ID, in upstream relevance order. Returns found=false when the search has
// no results; no disambiguation is attempted.
func (c *Client) SearchActorID(ctx context.Context, actorName string) (id int64, found bool, err error) {
	q := url.Values{}
	q.Set("query", actorName)
	q.Set("language", "en-US")
	endpoint := fmt.Sprintf("%s/search/person?%s", c.apiBaseURL, q.Encode())

	var payload struct {
		Results []struct {
			ID int64 `json:"id"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, false, err
	}
	if len(payload.Results) == 0 {
		return 0, false, nil
	}
	return payload.Results[0].ID, true, nil
}

// ActorByName searches for an actor and fetches their full detail record.
// Returns nil when no actor matches the name.
func (c *Client) ActorByName(ctx context.Context, actorName string) (*Person, error) {
	id, found, err := c.SearchActorID(ctx, actorName)
	if err != nil {
		return nil, err
	}
	if !found {
		c.log.WithField("actor_name", actorName).Debug("no search results")
		return nil, nil
	}

	var person Person
	endpoint := fmt.Sprintf("%s/person/%d", c.apiBaseURL, id)
	if err := c.getJSON(ctx, endpoint, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// MoviesByActor lists movies featuring the given actor, in upstream order.
// The result may be empty.
func (c *Client) MoviesByActor(ctx context.Context, actorID int64) ([]Movie, error) {
	q := url.Values{}
	q.Set("with_cast", strconv.FormatInt(actorID, 10))
	endpoint := fmt.Sprintf("%s/discover/movie?%s", c.apiBaseURL, q.Encode())

	var payload struct {
		Results []Movie `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// ResolveImageURL composes the full image URL for a TMDB-relative path.
// Pure string composition, no I/O.
func (c *Client) ResolveImageURL(imagePath string) string {
	return c.imageBaseURL + imagePath
}

// ImageAsBase64 downloads the image at the given TMDB-relative path and
// returns its bytes base64-encoded. Any non-2xx status is a failure; the
// downloaded bytes are not content-type checked.
func (c *Client) ImageAsBase64(ctx context.Context, imagePath string) (string, error) {
	endpoint := c.ResolveImageURL(imagePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.doer.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}
