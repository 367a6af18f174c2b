package tickets

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thomas-vilte/tickety/internal/config"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/logger"
	"github.com/thomas-vilte/tickety/internal/tui"
	"github.com/urfave/cli/v3"
)

type BrowseCommandFactory struct {
	open ShellProvider
}

func NewBrowseCommandFactory(open ShellProvider) *BrowseCommandFactory {
	return &BrowseCommandFactory{open: open}
}

func (f *BrowseCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: t.GetMessage("browse.usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sh, err := f.open(ctx)
			if err != nil {
				return err
			}

			// The alt screen owns the terminal; failures reach the user as notices.
			ctx = logger.WithLogger(ctx, slog.New(slog.DiscardHandler))

			model := tui.NewBrowseModel(ctx, sh, t)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}
