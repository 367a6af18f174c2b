package tickets

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/form"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/models"
	"github.com/thomas-vilte/tickety/internal/tui"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

// FormRunner asks the user for a ticket. It returns nil when the form is cancelled.
type FormRunner func(ctx context.Context, t *i18n.Translations, title, number, content string) (*models.TicketCandidate, error)

type AddCommandFactory struct {
	open    ShellProvider
	runForm FormRunner
}

func NewAddCommandFactory(open ShellProvider) *AddCommandFactory {
	return &AddCommandFactory{open: open, runForm: runFormProgram}
}

func (f *AddCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: t.GetMessage("add.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: t.GetMessage("add.title_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Usage:   t.GetMessage("add.number_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:    "content",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("add.content_flag", 0, nil),
			},
		},
		Action: f.addAction(t),
	}
}

func (f *AddCommandFactory) addAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		out := cmd.Root().Writer
		title, number, content := cmd.String("title"), cmd.String("number"), cmd.String("content")

		var candidate *models.TicketCandidate
		if cmd.IsSet("title") && cmd.IsSet("number") && cmd.IsSet("content") {
			fm := form.New()
			fm.SetTitle(title)
			fm.SetNumberText(number)
			fm.SetContent(content)

			submitted, ok := fm.Submit()
			if !ok {
				return domainErrors.ErrInvalidTicket.WithContext("Field", t.GetMessage(tui.FieldLabel(fm.Active()), 0, nil))
			}
			candidate = &submitted
		} else {
			var err error
			candidate, err = f.runForm(ctx, t, title, number, content)
			if err != nil {
				return err
			}
			if candidate == nil {
				ui.PrintInfo(out, t.GetMessage("add.cancelled", 0, nil))
				return nil
			}
		}

		sh, err := f.open(ctx)
		if err != nil {
			return err
		}

		var ticket models.Ticket
		err = ui.WithSpinner(t.GetMessage("add.saving", 0, nil), func() error {
			var addErr error
			ticket, addErr = sh.Add(ctx, *candidate)
			return addErr
		})
		if err != nil {
			return err
		}

		ui.PrintSuccess(out, t.GetMessage(sh.Notice().MessageID, 0, nil))
		ui.PrintKeyValue(out, t.GetMessage("ticket.field_id", 0, nil), ticket.ID)
		return nil
	}
}

func runFormProgram(ctx context.Context, t *i18n.Translations, title, number, content string) (*models.TicketCandidate, error) {
	model := tui.NewAddModel(t)
	model.Form.Prefill(title, number, content)

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	return final.(tui.AddModel).Candidate, nil
}
