package tickets

import (
	"context"
	"strings"

	"github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

type DeleteCommandFactory struct {
	open ShellProvider
}

func NewDeleteCommandFactory(open ShellProvider) *DeleteCommandFactory {
	return &DeleteCommandFactory{open: open}
}

func (f *DeleteCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     t.GetMessage("delete.usage", 0, nil),
		ArgsUsage: t.GetMessage("delete.args_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := strings.TrimSpace(cmd.Args().First())
			if id == "" {
				return domainErrors.ErrMissingTicketID
			}

			sh, err := f.open(ctx)
			if err != nil {
				return err
			}

			err = ui.WithSpinner(t.GetMessage("delete.deleting", 0, nil), func() error {
				return sh.Remove(ctx, id)
			})
			if err != nil {
				return err
			}

			ui.PrintInfo(cmd.Root().Writer, t.GetMessage(sh.Notice().MessageID, 0, nil))
			return nil
		},
	}
}
