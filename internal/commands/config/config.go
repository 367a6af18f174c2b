package config

import (
	"github.com/thomas-vilte/tickety/internal/config"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory builds the config command tree. stored is the file as
// saved on disk; the config passed to CreateCommand includes environment overrides.
type ConfigCommandFactory struct {
	stored      *config.Config
	sessionPath string
}

func NewConfigCommandFactory(stored *config.Config, sessionPath string) *ConfigCommandFactory {
	return &ConfigCommandFactory{stored: stored, sessionPath: sessionPath}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t),
		},
	}
}
