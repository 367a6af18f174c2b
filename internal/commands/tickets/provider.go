package tickets

import (
	"context"

	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/logger"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/services"
	"github.com/thomas-vilte/tickety/internal/shell"
	"github.com/thomas-vilte/tickety/internal/vcs"
)

// ShellProvider opens the authenticated shell of the stored user.
type ShellProvider func(ctx context.Context) (*shell.Shell, error)

type CredentialLoader interface {
	Load() (*models.Credentials, error)
}

// NewShellProvider builds a shell backed by the gist API for whoever is logged in.
func NewShellProvider(store CredentialLoader, factory vcs.ClientFactory) ShellProvider {
	return func(ctx context.Context) (*shell.Shell, error) {
		creds, err := store.Load()
		if err != nil {
			return nil, domainErrors.ErrSessionStorage.WithError(err)
		}
		if creds == nil {
			return nil, domainErrors.ErrNotLoggedIn
		}

		client, err := factory.CreateClient(creds.Token)
		if err != nil {
			return nil, domainErrors.ErrServerConnection.WithError(err)
		}

		logger.Debug(ctx, "shell opened", "user", creds.Name)
		return shell.New(services.NewTicketService(client), creds.Name), nil
	}
}
