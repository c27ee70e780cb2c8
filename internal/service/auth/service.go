// Package auth exchanges staff credentials for a dashboard session. The
// upstream bearer token stays server-side, keyed by session id; clients
// only ever hold the dashboard's own signed token.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/altikastudio/dashboard-api/internal/upstream"
	pkgauth "github.com/altikastudio/dashboard-api/pkg/auth"
	apperrors "github.com/altikastudio/dashboard-api/pkg/errors"
	"github.com/altikastudio/dashboard-api/pkg/logger"
)

// Authenticator verifies staff credentials against the upstream.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (upstream.Credential, error)
}

type Service struct {
	authenticator Authenticator
	tokens        pkgauth.TokenService
	sessions      *gocache.Cache
	logger        *logger.Logger
}

func NewService(authenticator Authenticator, tokens pkgauth.TokenService, sessions *gocache.Cache, log *logger.Logger) *Service {
	return &Service{
		authenticator: authenticator,
		tokens:        tokens,
		sessions:      sessions,
		logger:        log.With("component", "auth"),
	}
}

// Login proxies the credentials upstream, stores the returned bearer under
// a fresh session id and answers with the signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	cred, err := s.authenticator.Login(ctx, email, password)
	if err != nil {
		return "", apperrors.Unauthorized(fmt.Errorf("upstream rejected login: %w", err))
	}

	sessionID := uuid.New().String()
	s.sessions.SetDefault(sessionID, cred)

	token, err := s.tokens.Generate(sessionID)
	if err != nil {
		return "", apperrors.Internal(err)
	}

	s.logger.Info("session opened", "session_id", sessionID)
	return token, nil
}

// Resolve validates a session token and returns the upstream credential
// stored for it, plus the session id the record caches are keyed by.
func (s *Service) Resolve(token string) (upstream.Credential, string, error) {
	sessionID, err := s.tokens.Validate(token)
	if err != nil {
		return upstream.Credential{}, "", apperrors.Unauthorized(err)
	}

	stored, ok := s.sessions.Get(sessionID)
	if !ok {
		return upstream.Credential{}, "", apperrors.Unauthorized(fmt.Errorf("session %s expired", sessionID))
	}
	return stored.(upstream.Credential), sessionID, nil
}

// Logout discards the stored credential; the session token becomes useless
// even before it expires.
func (s *Service) Logout(token string) {
	sessionID, err := s.tokens.Validate(token)
	if err != nil {
		return
	}
	s.sessions.Delete(sessionID)
	s.logger.Info("session closed", "session_id", sessionID)
}
