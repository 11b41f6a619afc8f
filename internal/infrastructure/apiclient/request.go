package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studycare/studycare-client/internal/core/domain"
)

const (
	msgUnexpectedShape = "unexpected response shape"
	maxExcerptRunes    = 100
)

// RequestOption adjusts an outgoing request.
type RequestOption func(*http.Request)

// WithHeader sets a request header. Caller headers are applied after the
// default Content-Type, so they can override it; Authorization is always
// set from the client token.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// Request sends a JSON request to endpoint (relative to the base URL). body,
// when non-nil, is JSON encoded.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) domain.Envelope {
	start := time.Now()

	env := c.doJSON(ctx, method, endpoint, body, opts)

	c.observe(method, endpoint, env, time.Since(start))
	return env
}

func (c *Client) Get(ctx context.Context, endpoint string, opts ...RequestOption) domain.Envelope {
	return c.Request(ctx, http.MethodGet, endpoint, nil, opts...)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any, opts ...RequestOption) domain.Envelope {
	return c.Request(ctx, http.MethodPost, endpoint, body, opts...)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any, opts ...RequestOption) domain.Envelope {
	return c.Request(ctx, http.MethodPut, endpoint, body, opts...)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts ...RequestOption) domain.Envelope {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, opts...)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, opts []RequestOption) domain.Envelope {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return domain.Fail[json.RawMessage](err.Error())
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return transportFailure(err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.prepare(req, opts)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer res.Body.Close()

	return c.readEnvelope(res)
}

// prepare applies caller options, the request id and the bearer header, in
// that order.
func (c *Client) prepare(req *http.Request, opts []RequestOption) {
	for _, opt := range opts {
		opt(req)
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	c.authorize(req)
}

// wireEnvelope is the loosely typed shape of a response body. Error stays raw
// because some failures carry a plain string there.
type wireEnvelope struct {
	Success json.RawMessage `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func (w wireEnvelope) errorMessage() string {
	var body struct {
		Message string `json:"message"`
	}
	if len(w.Error) == 0 || json.Unmarshal(w.Error, &body) != nil {
		return ""
	}
	return body.Message
}

// readEnvelope turns a JSON response into an envelope. Non-2xx statuses fail
// with the body's error message. A 2xx body must carry a boolean success
// field; anything else fails closed like a transport error.
func (c *Client) readEnvelope(res *http.Response) domain.Envelope {
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return transportFailure(err)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return domain.Fail[json.RawMessage](err.Error())
	}

	var wire wireEnvelope
	shapeErr := json.Unmarshal(raw, &wire)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if shapeErr != nil {
			return domain.FailStatus[json.RawMessage](res.StatusCode, "")
		}
		return domain.FailStatus[json.RawMessage](res.StatusCode, wire.errorMessage())
	}

	var success bool
	if shapeErr != nil || len(wire.Success) == 0 || json.Unmarshal(wire.Success, &success) != nil {
		c.log.Warn().Int("status", res.StatusCode).Msg("response is not an envelope")
		return domain.Fail[json.RawMessage](msgUnexpectedShape)
	}

	if !success {
		return domain.FailStatus[json.RawMessage](res.StatusCode, wire.errorMessage())
	}

	return domain.OK(c.cleanTokenField(wire.Data))
}

// cleanTokenField normalizes a string data.token in a success payload, in
// case the backend echoes back a malformed credential.
func (c *Client) cleanTokenField(data json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '{' {
		return data
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return data
	}

	var token string
	rawToken, found := fields["token"]
	if !found || json.Unmarshal(rawToken, &token) != nil {
		return data
	}

	clean, ok := domain.NormalizeToken(token)
	if !ok || clean == token {
		return data
	}
	c.observer.ObserveTokenCleanup("response")

	encoded, err := json.Marshal(clean)
	if err != nil {
		return data
	}
	fields["token"] = encoded

	out, err := json.Marshal(fields)
	if err != nil {
		return data
	}
	return out
}

// transportFailure reports a failure that never produced an HTTP response.
// The *url.Error wrapper added by net/http is dropped so the message is the
// underlying cause.
func transportFailure(err error) domain.Envelope {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	msg := err.Error()
	if msg == "" {
		msg = domain.MsgNetworkError
	}
	return domain.Response[json.RawMessage]{Error: &domain.APIError{Message: msg}}
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > maxExcerptRunes {
		runes = runes[:maxExcerptRunes]
	}
	return string(runes)
}

func nonJSONFailure(status int, body []byte) domain.Envelope {
	return domain.FailStatus[json.RawMessage](status, fmt.Sprintf("Server returned %d: %s", status, excerpt(string(body))))
}

func (c *Client) observe(method, endpoint string, env domain.Envelope, elapsed time.Duration) {
	status := 0
	if env.Error != nil {
		status = env.Error.Status
	}

	outcome := "success"
	switch {
	case env.Success:
	case status == 0:
		outcome = "network_error"
	default:
		outcome = "failure"
	}

	route := routeGroup(endpoint)
	c.observer.ObserveRequest(method, route, status, outcome, elapsed)

	c.log.Debug().
		Str("method", method).
		Str("route", route).
		Str("outcome", outcome).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("api request finished")
}

// routeGroup reduces an endpoint to its first path segment ("/notes/42" ->
// "/notes") to keep metric cardinality bounded.
func routeGroup(endpoint string) string {
	path, _, _ := strings.Cut(endpoint, "?")
	path = strings.TrimPrefix(path, "/")
	first, _, _ := strings.Cut(path, "/")
	return "/" + first
}
