package facade

import (
	"context"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

type Auth struct {
	r apiclient.Requester
}

func (a *Auth) Register(ctx context.Context, req domain.RegisterRequest) domain.Response[domain.AuthResult] {
	return apiclient.Post[domain.AuthResult](ctx, a.r, "/auth/register", req)
}

func (a *Auth) Login(ctx context.Context, req domain.LoginRequest) domain.Response[domain.AuthResult] {
	return apiclient.Post[domain.AuthResult](ctx, a.r, "/auth/login", req)
}

func (a *Auth) Profile(ctx context.Context) domain.Response[domain.User] {
	return apiclient.Get[domain.User](ctx, a.r, "/auth/profile")
}

func (a *Auth) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) domain.Response[domain.User] {
	return apiclient.Put[domain.User](ctx, a.r, "/auth/profile", upd)
}
