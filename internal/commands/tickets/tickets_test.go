package tickets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/shell"
	"github.com/urfave/cli/v3"
)

func fakeProvider(service *shell.MockTicketService) ShellProvider {
	return func(ctx context.Context) (*shell.Shell, error) {
		return shell.New(service, "octocat"), nil
	}
}

func setupApp(t *testing.T, commands ...*cli.Command) (*cli.Command, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &cli.Command{Name: "tickety", Writer: &buf, Commands: commands}, &buf
}

func newTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func TestListCommand(t *testing.T) {
	trans := newTranslations(t)

	t.Run("should print tickets as JSON", func(t *testing.T) {
		// Arrange
		service := new(shell.MockTicketService)
		service.On("FetchTickets", mock.Anything).Return([]models.Ticket{
			{ID: "g1", Title: "Bug", Number: 1, Content: "crash"},
			{ID: "g2", Title: "Feature", Number: 2, Content: "dark mode"},
		}, nil)
		app, buf := setupApp(t, NewListCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		// Act
		err := app.Run(context.Background(), []string{"tickety", "list", "--format", "json"})

		// Assert
		require.NoError(t, err)
		var got []models.Ticket
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []string{"g1", "g2"}, []string{got[0].ID, got[1].ID})
		assert.Equal(t, "dark mode", got[1].Content)
	})

	t.Run("should reject unknown formats before loading", func(t *testing.T) {
		service := new(shell.MockTicketService)
		app, _ := setupApp(t, NewListCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "ls", "-f", "xml"})

		assert.Error(t, err)
		service.AssertNotCalled(t, "FetchTickets", mock.Anything)
	})

	t.Run("should surface fetch errors", func(t *testing.T) {
		service := new(shell.MockTicketService)
		service.On("FetchTickets", mock.Anything).Return(nil, domainErrors.ErrFetchTickets)
		app, _ := setupApp(t, NewListCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "list"})

		assert.ErrorIs(t, err, domainErrors.ErrFetchTickets)
	})

	t.Run("should require a login", func(t *testing.T) {
		provider := func(ctx context.Context) (*shell.Shell, error) {
			return nil, domainErrors.ErrNotLoggedIn
		}
		app, _ := setupApp(t, NewListCommandFactory(provider).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "list"})

		assert.ErrorIs(t, err, domainErrors.ErrNotLoggedIn)
	})
}

func TestAddCommand(t *testing.T) {
	trans := newTranslations(t)
	candidate := models.TicketCandidate{Title: "Bug", Number: 7, Content: "crash"}

	t.Run("should add a ticket from flags", func(t *testing.T) {
		// Arrange
		service := new(shell.MockTicketService)
		service.On("CreateTicket", mock.Anything, candidate).Return(candidate.WithID("g7"), nil)
		app, buf := setupApp(t, NewAddCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		// Act
		err := app.Run(context.Background(), []string{"tickety", "add", "--title", "Bug", "-n", "7", "-c", "crash"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Ticket added.")
		assert.Contains(t, buf.String(), "g7")
		service.AssertExpectations(t)
	})

	t.Run("should reject an invalid number", func(t *testing.T) {
		service := new(shell.MockTicketService)
		app, _ := setupApp(t, NewAddCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "add", "--title", "Bug", "-n", "0", "-c", "crash"})

		require.ErrorIs(t, err, domainErrors.ErrInvalidTicket)
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Number", appErr.Context["Field"])
		service.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
	})

	t.Run("should use the form when flags are missing", func(t *testing.T) {
		service := new(shell.MockTicketService)
		service.On("CreateTicket", mock.Anything, candidate).Return(candidate.WithID("g7"), nil)
		factory := NewAddCommandFactory(fakeProvider(service))
		var prefilled string
		factory.runForm = func(ctx context.Context, t *i18n.Translations, title, number, content string) (*models.TicketCandidate, error) {
			prefilled = title
			c := candidate
			return &c, nil
		}
		app, buf := setupApp(t, factory.CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "add", "--title", "Bug"})

		require.NoError(t, err)
		assert.Equal(t, "Bug", prefilled)
		assert.Contains(t, buf.String(), "Ticket added.")
	})

	t.Run("should do nothing when the form is cancelled", func(t *testing.T) {
		service := new(shell.MockTicketService)
		factory := NewAddCommandFactory(fakeProvider(service))
		factory.runForm = func(ctx context.Context, t *i18n.Translations, title, number, content string) (*models.TicketCandidate, error) {
			return nil, nil
		}
		app, buf := setupApp(t, factory.CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "add"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Nothing was added.")
		service.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
	})
}

func TestDeleteCommand(t *testing.T) {
	trans := newTranslations(t)

	t.Run("should delete by id", func(t *testing.T) {
		service := new(shell.MockTicketService)
		service.On("DeleteTicket", mock.Anything, "g1").Return(nil)
		app, buf := setupApp(t, NewDeleteCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "rm", "g1"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Ticket deleted.")
		service.AssertExpectations(t)
	})

	t.Run("should require an id", func(t *testing.T) {
		service := new(shell.MockTicketService)
		app, _ := setupApp(t, NewDeleteCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "delete"})

		assert.ErrorIs(t, err, domainErrors.ErrMissingTicketID)
	})

	t.Run("should surface delete errors", func(t *testing.T) {
		service := new(shell.MockTicketService)
		service.On("DeleteTicket", mock.Anything, "g1").Return(domainErrors.ErrDeleteTicket)
		app, _ := setupApp(t, NewDeleteCommandFactory(fakeProvider(service)).CreateCommand(trans, nil))

		err := app.Run(context.Background(), []string{"tickety", "delete", "g1"})

		assert.ErrorIs(t, err, domainErrors.ErrDeleteTicket)
	})
}

func TestShellProvider(t *testing.T) {
	t.Run("should fail without stored credentials", func(t *testing.T) {
		open := NewShellProvider(loaderFunc(func() (*models.Credentials, error) { return nil, nil }), nil)

		_, err := open(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrNotLoggedIn)
	})

	t.Run("should wrap storage errors", func(t *testing.T) {
		open := NewShellProvider(loaderFunc(func() (*models.Credentials, error) {
			return nil, errors.New("corrupt file")
		}), nil)

		_, err := open(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrSessionStorage)
	})
}

type loaderFunc func() (*models.Credentials, error)

func (f loaderFunc) Load() (*models.Credentials, error) { return f() }
