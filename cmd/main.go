package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/thomas-vilte/tickety/internal/cli/registry"
	"github.com/thomas-vilte/tickety/internal/commands/auth"
	configcmd "github.com/thomas-vilte/tickety/internal/commands/config"
	"github.com/thomas-vilte/tickety/internal/commands/tickets"
	cfg "github.com/thomas-vilte/tickety/internal/config"
	domainErrors "github.com/thomas-vilte/tickety/internal/errors"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/thomas-vilte/tickety/internal/logger"
	"github.com/thomas-vilte/tickety/internal/services"
	"github.com/thomas-vilte/tickety/internal/session"
	"github.com/thomas-vilte/tickety/internal/ui"
	"github.com/thomas-vilte/tickety/internal/vcs/github"
	"github.com/thomas-vilte/tickety/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = app.Run(ctx, os.Args)
	stop()
	if err != nil {
		ui.StopActiveSpinner()
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, _ := os.UserHomeDir()
	dir, err := cfg.Dir(homeDir)
	if err != nil {
		return nil, nil, domainErrors.ErrConfigMissing.WithError(err)
	}

	stored, err := cfg.LoadConfig(dir)
	if err != nil {
		return nil, nil, domainErrors.ErrConfigMissing.WithError(err)
	}

	cfgApp, err := stored.WithEnv()
	if err != nil {
		return nil, nil, domainErrors.ErrConfigMissing.WithError(err)
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	store := session.NewStore(dir)
	clientFactory := github.NewGitHubClientFactory(cfgApp)
	openShell := tickets.NewShellProvider(store, clientFactory)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"browse", tickets.NewBrowseCommandFactory(openShell)},
		{"list", tickets.NewListCommandFactory(openShell)},
		{"add", tickets.NewAddCommandFactory(openShell)},
		{"delete", tickets.NewDeleteCommandFactory(openShell)},
		{"login", auth.NewLoginCommandFactory(store, services.NewAuthService(clientFactory))},
		{"logout", auth.NewLogoutCommandFactory(store)},
		{"whoami", auth.NewWhoamiCommandFactory(store)},
		{"config", configcmd.NewConfigCommandFactory(stored, store.Path())},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, translations, err
		}
	}

	return &cli.Command{
		Name:           "tickety",
		Usage:          translations.GetMessage("app.usage", 0, nil),
		Version:        version.Version,
		Description:    translations.GetMessage("app.description", 0, nil),
		Commands:       registerCommand.CreateCommands(),
		DefaultCommand: "browse",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("app.debug_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("app.verbose_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: translations.GetMessage("app.lang_flag", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			if lang := cmd.String("lang"); lang != "" {
				if !cfg.IsSupportedLanguage(lang) {
					return ctx, domainErrors.ErrUnsupportedLanguage.WithContext("Language", lang)
				}
				if err := translations.SetLanguage(lang); err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		EnableShellCompletion: true,
	}, translations, nil
}
