package auth

import (
	"context"

	"github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

type LogoutCommandFactory struct {
	store CredentialStore
}

func NewLogoutCommandFactory(store CredentialStore) *LogoutCommandFactory {
	return &LogoutCommandFactory{store: store}
}

func (f *LogoutCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: t.GetMessage("logout.usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := f.store.Save(nil); err != nil {
				return domainErrors.ErrSessionStorage.WithError(err)
			}
			ui.PrintSuccess(cmd.Root().Writer, t.GetMessage("logout.success", 0, nil))
			return nil
		},
	}
}
