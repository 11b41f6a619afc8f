// Package apiclient talks to the StudyCare REST API. A Client owns the
// session token, attaches it as a bearer credential and folds every outcome
// (success, HTTP failure, transport failure) into a domain.Envelope.
package apiclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
)

// DefaultBaseURL is used when Options.BaseURL is empty.
const DefaultBaseURL = "http://localhost:5000/api"

// Observer receives a callback for every finished request and for every
// token that had to be cleaned. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveRequest(method, route string, status int, outcome string, elapsed time.Duration)
	ObserveTokenCleanup(source string)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(string, string, int, string, time.Duration) {}
func (nopObserver) ObserveTokenCleanup(string)                                {}

// Options configures a Client. Only BaseURL is commonly set; a nil Storage
// keeps the token in memory only.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Storage    ports.Storage
	Logger     zerolog.Logger
	Observer   Observer
}

// Client is the API client. It is safe for concurrent use; the token slot is
// last-writer-wins.
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    ports.Storage
	log        zerolog.Logger
	observer   Observer

	mu    sync.RWMutex
	token string
}

// New builds a Client and restores the persisted token, if any. A stored
// token is normalized and written back in its clean form; one that cleans
// down to nothing is removed from storage.
func New(ctx context.Context, opts Options) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		storage:    opts.Storage,
		log:        opts.Logger,
		observer:   opts.Observer,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.observer == nil {
		c.observer = nopObserver{}
	}

	c.restoreToken(ctx)
	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) restoreToken(ctx context.Context) {
	if c.storage == nil {
		return
	}

	stored, found, err := c.storage.GetItem(ctx, domain.TokenStorageKey)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to read stored token")
		return
	}
	if !found || stored == "" {
		return
	}

	clean, ok := domain.NormalizeToken(stored)
	if !ok {
		c.log.Warn().Msg("stored token is empty after cleaning, removing it")
		if err := c.storage.RemoveItem(ctx, domain.TokenStorageKey); err != nil {
			c.log.Warn().Err(err).Msg("failed to remove stored token")
		}
		return
	}

	if clean != stored {
		c.observer.ObserveTokenCleanup("storage")
	}

	c.mu.Lock()
	c.token = clean
	c.mu.Unlock()

	if err := c.storage.SetItem(ctx, domain.TokenStorageKey, clean); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist cleaned token")
	}
}

// SetToken normalizes token and makes it the current credential, both in
// memory and in storage. Empty input, or input that cleans down to nothing,
// is logged and ignored.
func (c *Client) SetToken(ctx context.Context, token string) bool {
	if token == "" {
		c.log.Error().Msg("invalid token provided")
		return false
	}

	clean, ok := domain.NormalizeToken(token)
	if !ok {
		c.log.Error().Msg("token cleaning resulted in empty token")
		return false
	}
	if clean != token {
		c.observer.ObserveTokenCleanup("set")
	}

	c.mu.Lock()
	c.token = clean
	c.mu.Unlock()

	if c.storage != nil {
		if err := c.storage.SetItem(ctx, domain.TokenStorageKey, clean); err != nil {
			c.log.Warn().Err(err).Msg("failed to persist token")
		}
	}
	return true
}

// ClearToken forgets the current token and removes the persisted copy.
func (c *Client) ClearToken(ctx context.Context) {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if c.storage != nil {
		if err := c.storage.RemoveItem(ctx, domain.TokenStorageKey); err != nil {
			c.log.Warn().Err(err).Msg("failed to remove persisted token")
		}
	}
}

// Token returns the current token and whether one is set.
func (c *Client) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// authorize attaches the bearer header when a token is present.
func (c *Client) authorize(req *http.Request) {
	token, ok := c.Token()
	if !ok {
		return
	}
	if clean, ok := domain.NormalizeToken(token); ok {
		req.Header.Set("Authorization", "Bearer "+clean)
	}
}
