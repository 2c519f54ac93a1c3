package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"taskletix.app/intake/internal/store"
)

// AdminAuthService guards the admin endpoints with a single shared password.
// A successful login yields a bearer token that stays valid until the
// process exits.
type AdminAuthService interface {
	Login(ctx context.Context, password string) (string, error)
	// Authorize checks an Authorization header value ("Bearer <token>").
	Authorize(ctx context.Context, header string) error
}

type adminAuthService struct {
	tokens   store.AdminTokenStore
	password string
}

func NewAdminAuthService(tokens store.AdminTokenStore, password string) AdminAuthService {
	return &adminAuthService{
		tokens:   tokens,
		password: password,
	}
}

func (s *adminAuthService) Login(ctx context.Context, password string) (string, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return "", ErrEmptyPassword
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		slog.WarnContext(ctx, "admin login rejected")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx)
	if err != nil {
		return "", fmt.Errorf("issuing admin token: %w", err)
	}

	slog.InfoContext(ctx, "admin logged in")
	return token, nil
}

func (s *adminAuthService) Authorize(ctx context.Context, header string) error {
	token, ok := parseBearer(header)
	if !ok || !s.tokens.Check(ctx, token) {
		return ErrUnauthorized
	}
	return nil
}

// parseBearer accepts exactly two whitespace-separated parts with a
// case-insensitive "bearer" scheme.
func parseBearer(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
