package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/pkg/validation"
)

// SessionService signs users in and out and checks that the current session
// may open a given dashboard.
type SessionService struct {
	auth      ports.AuthAPI
	creds     ports.Credentials
	validator *validation.Validator
	logger    zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, creds ports.Credentials, logger zerolog.Logger) *SessionService {
	return &SessionService{
		auth:      auth,
		creds:     creds,
		validator: validation.Default(),
		logger:    logger,
	}
}

// Register creates an account and signs it in.
func (s *SessionService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	result, err := unwrap(s.auth.Register(ctx, req), "register")
	if err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("registration failed")
		return nil, err
	}
	return s.adopt(ctx, result)
}

// Login signs in with email and password and stores the returned token.
func (s *SessionService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	result, err := unwrap(s.auth.Login(ctx, req), "login")
	if err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("login failed")
		return nil, err
	}
	return s.adopt(ctx, result)
}

func (s *SessionService) adopt(ctx context.Context, result domain.AuthResult) (*domain.AuthResult, error) {
	if !s.creds.SetToken(ctx, result.Token) {
		return nil, fmt.Errorf("%w: backend returned no usable token", domain.ErrUnauthenticated)
	}
	result.Token, _ = s.creds.Token()

	s.logger.Info().Str("user_id", result.User.ID).Str("role", string(result.User.Role)).Msg("signed in")
	return &result, nil
}

// Logout forgets the session token.
func (s *SessionService) Logout(ctx context.Context) {
	s.creds.ClearToken(ctx)
	s.logger.Info().Msg("signed out")
}

// Profile returns the signed-in user without any role check.
func (s *SessionService) Profile(ctx context.Context) (*domain.User, error) {
	if _, ok := s.creds.Token(); !ok {
		return nil, domain.ErrUnauthenticated
	}
	user, err := unwrap(s.auth.Profile(ctx), "load profile")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Guard loads the profile and checks it against the dashboard's role.
//
// A failed profile fetch or an unknown role clears the token and returns
// ErrUnauthenticated. A known role that belongs elsewhere returns a
// *domain.RedirectError naming that role's home route; the token is kept.
func (s *SessionService) Guard(ctx context.Context, role domain.Role) (*domain.User, error) {
	res := s.auth.Profile(ctx)
	if !res.Success {
		s.creds.ClearToken(ctx)
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, res.Message())
	}

	user := res.Data
	switch {
	case user.Role == role:
		return &user, nil
	case user.Role.Valid():
		return nil, &domain.RedirectError{Role: user.Role, Route: user.Role.Home()}
	default:
		s.logger.Warn().Str("role", string(user.Role)).Msg("profile has unknown role, signing out")
		s.creds.ClearToken(ctx)
		return nil, domain.ErrUnauthenticated
	}
}

// ToggleSimplifiedMode flips the simplified-mode preference of the signed-in
// user and returns the updated profile.
func (s *SessionService) ToggleSimplifiedMode(ctx context.Context) (*domain.User, error) {
	user, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}

	next := !user.SimplifiedMode
	updated, err := unwrap(s.auth.UpdateProfile(ctx, domain.ProfileUpdate{SimplifiedMode: &next}), "update simplified mode")
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Claims decodes the current token for display. The signature is not
// checked; the backend remains the only authority on validity.
func (s *SessionService) Claims() (*domain.SessionClaims, error) {
	token, ok := s.creds.Token()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	out := &domain.SessionClaims{}
	out.Subject, _ = mc.GetSubject()
	out.Email, _ = mc["email"].(string)
	out.Role, _ = mc["role"].(string)

	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		t := iat.Time
		out.IssuedAt = &t
	}
	exp, err := mc.GetExpirationTime()
	if err != nil && !errors.Is(err, jwt.ErrInvalidType) {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
		out.Expired = time.Now().After(t)
	}
	return out, nil
}
