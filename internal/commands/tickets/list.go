package tickets

import (
	"context"

	"github.com/thomas-vilte/tickety/internal/config"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

type ListCommandFactory struct {
	open ShellProvider
}

func NewListCommandFactory(open ShellProvider) *ListCommandFactory {
	return &ListCommandFactory{open: open}
}

func (f *ListCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("list.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(ui.FormatTable),
				Usage:   t.GetMessage("list.format_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := ui.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			sh, err := f.open(ctx)
			if err != nil {
				return err
			}

			err = ui.WithSpinner(t.GetMessage("list.loading", 0, nil), func() error {
				return sh.Refresh(ctx)
			})
			if err != nil {
				return err
			}

			return ui.RenderTickets(cmd.Root().Writer, sh.Tickets(), format, t)
		},
	}
}
