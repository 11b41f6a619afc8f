package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// Requester is the part of Client the façades depend on.
type Requester interface {
	Request(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) domain.Envelope
	PostFormData(ctx context.Context, endpoint string, form *FormData, opts ...RequestOption) domain.Envelope
}

var _ Requester = (*Client)(nil)

// Decode converts a raw envelope into a typed one. A failure passes through
// unchanged, a missing or null payload yields the zero T, and a payload that
// does not fit T fails closed.
func Decode[T any](env domain.Envelope) domain.Response[T] {
	if !env.Success {
		if env.Error == nil {
			return domain.Fail[T]("")
		}
		return domain.Response[T]{Error: env.Error}
	}

	var data T
	raw := bytes.TrimSpace(env.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.OK(data)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.Fail[T](msgUnexpectedShape + ": " + err.Error())
	}
	return domain.OK(data)
}

func Get[T any](ctx context.Context, r Requester, endpoint string, opts ...RequestOption) domain.Response[T] {
	return Decode[T](r.Request(ctx, http.MethodGet, endpoint, nil, opts...))
}

func Post[T any](ctx context.Context, r Requester, endpoint string, body any, opts ...RequestOption) domain.Response[T] {
	return Decode[T](r.Request(ctx, http.MethodPost, endpoint, body, opts...))
}

func Put[T any](ctx context.Context, r Requester, endpoint string, body any, opts ...RequestOption) domain.Response[T] {
	return Decode[T](r.Request(ctx, http.MethodPut, endpoint, body, opts...))
}

func Delete[T any](ctx context.Context, r Requester, endpoint string, opts ...RequestOption) domain.Response[T] {
	return Decode[T](r.Request(ctx, http.MethodDelete, endpoint, nil, opts...))
}

func PostForm[T any](ctx context.Context, r Requester, endpoint string, form *FormData, opts ...RequestOption) domain.Response[T] {
	return Decode[T](r.PostFormData(ctx, endpoint, form, opts...))
}
