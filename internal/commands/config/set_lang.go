package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config.set_lang_usage", 0, nil),
		ArgsUsage: strings.Join(config.SupportedLanguages(), "|"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lang := strings.ToLower(strings.TrimSpace(cmd.Args().First()))
			if !config.IsSupportedLanguage(lang) {
				return domainErrors.ErrUnsupportedLanguage.
					WithContext("Language", lang).
					WithSuggestion(fmt.Sprintf("Supported languages: %s", strings.Join(config.SupportedLanguages(), ", ")))
			}

			previous := c.stored.Language
			c.stored.Language = lang
			if err := config.SaveConfig(c.stored); err != nil {
				c.stored.Language = previous
				return fmt.Errorf("error saving configuration: %w", err)
			}

			if err := t.SetLanguage(lang); err != nil {
				return err
			}

			ui.PrintSuccess(cmd.Root().Writer, t.GetMessage("config.set_lang_success", 0, map[string]interface{}{
				"Language": lang,
			}))
			return nil
		},
	}
}
