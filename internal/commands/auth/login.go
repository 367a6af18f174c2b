package auth

import (
	"bufio"
	"context"

	"github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

type LoginCommandFactory struct {
	store CredentialStore
	auth  Authenticator
}

func NewLoginCommandFactory(store CredentialStore, auth Authenticator) *LoginCommandFactory {
	return &LoginCommandFactory{store: store, auth: auth}
}

func (f *LoginCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: t.GetMessage("login.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   t.GetMessage("login.user_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   t.GetMessage("login.token_flag", 0, nil),
			},
		},
		Action: f.loginAction(t),
	}
}

func (f *LoginCommandFactory) loginAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		out := cmd.Root().Writer
		in := cmd.Root().Reader
		reader := bufio.NewReader(in)

		user := cmd.String("user")
		token := cmd.String("token")

		var err error
		if user == "" {
			if user, err = prompt(out, reader, t.GetMessage("login.prompt_user", 0, nil)); err != nil {
				return err
			}
		}
		if token == "" {
			if token, err = promptSecret(out, in, reader, t.GetMessage("login.prompt_token", 0, nil)); err != nil {
				return err
			}
		}

		var creds *models.Credentials
		err = ui.WithSpinner(t.GetMessage("login.checking", 0, nil), func() error {
			var loginErr error
			creds, loginErr = f.auth.Login(ctx, user, token)
			return loginErr
		})
		if err != nil {
			return err
		}

		if err := f.store.Save(creds); err != nil {
			return domainErrors.ErrSessionStorage.WithError(err)
		}

		ui.PrintSuccess(out, t.GetMessage("login.success", 0, map[string]interface{}{
			"User": creds.Name,
		}))
		return nil
	}
}
