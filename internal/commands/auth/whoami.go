package auth

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/urfave/cli/v3"
)

type WhoamiCommandFactory struct {
	store CredentialStore
}

func NewWhoamiCommandFactory(store CredentialStore) *WhoamiCommandFactory {
	return &WhoamiCommandFactory{store: store}
}

func (f *WhoamiCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: t.GetMessage("whoami.usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			creds, err := f.store.Load()
			if err != nil {
				return domainErrors.ErrSessionStorage.WithError(err)
			}
			if creds == nil {
				return domainErrors.ErrNotLoggedIn
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, creds.Name)
			return err
		},
	}
}
