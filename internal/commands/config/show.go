package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thomas-vilte/tickety/internal/config"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer

			_, _ = fmt.Fprintln(out, ui.Accent.Sprint(t.GetMessage("config.show_header", 0, nil)))
			ui.PrintKeyValue(out, t.GetMessage("config.key_language", 0, nil), cfg.Language)
			ui.PrintKeyValue(out, t.GetMessage("config.key_api_url", 0, nil), cfg.APIURL)
			ui.PrintKeyValue(out, t.GetMessage("config.key_graphql_url", 0, nil), cfg.GraphQLURL)
			ui.PrintKeyValue(out, t.GetMessage("config.key_timeout", 0, nil), strconv.Itoa(int(cfg.Timeout().Seconds())))
			ui.PrintKeyValue(out, t.GetMessage("config.key_config_file", 0, nil), c.stored.PathFile)
			ui.PrintKeyValue(out, t.GetMessage("config.key_session_file", 0, nil), c.sessionPath)
			return nil
		},
	}
}
