package services

import (
	"context"
	"errors"
	"net/http"

	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/logger"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/vcs"
)

// GistScope is the OAuth scope a token needs to manage tickets.
const GistScope = "gist"

type AuthService struct {
	factory vcs.ClientFactory
}

func NewAuthService(factory vcs.ClientFactory) *AuthService {
	return &AuthService{factory: factory}
}

// Login checks that token belongs to username and may manage gists.
// The caller is responsible for persisting the returned credentials.
func (s *AuthService) Login(ctx context.Context, username, token string) (*models.Credentials, error) {
	if username == "" || token == "" {
		return nil, domainErrors.ErrMissingCredentials
	}

	client, err := s.factory.CreateClient(token)
	if err != nil {
		return nil, domainErrors.ErrServerConnection.WithError(err)
	}

	identity, err := client.GetAuthenticatedIdentity(ctx)
	if err != nil {
		logger.Debug(ctx, "identity check failed", "user", username, "error", err)
		return nil, mapLoginError(err)
	}

	if identity.Login != username {
		logger.Debug(ctx, "login does not match token owner", "user", username)
		return nil, domainErrors.ErrInvalidCredentials
	}

	if !identity.HasScope(GistScope) {
		return nil, domainErrors.ErrMissingGistScope
	}

	logger.Info(ctx, "user logged in", "user", identity.Login)
	return &models.Credentials{Name: identity.Login, Token: token}, nil
}

func mapLoginError(err error) error {
	var remote *domainErrors.RemoteError
	if !errors.As(err, &remote) {
		return domainErrors.ErrServerConnection.WithError(err)
	}

	switch remote.StatusCode {
	case http.StatusUnauthorized:
		return domainErrors.ErrInvalidCredentials.WithError(err)
	case http.StatusInternalServerError:
		return domainErrors.ErrServerConnection.WithError(err)
	default:
		return domainErrors.ErrUnexpectedResponse.
			WithContext("Status", remote.StatusCode).
			WithContext("Message", remote.Message).
			WithError(err)
	}
}
