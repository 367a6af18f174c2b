package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/tickety/internal/config"
	"github.com/thomas-vilte/tickety/internal/i18n"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name: m.name,
	}
}

func newTestRegistry(t *testing.T) (*Registry, *config.Config, *i18n.Translations) {
	t.Helper()
	cfg := &config.Config{}
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(cfg, translations), cfg, translations
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		// Arrange
		registry, _, _ := newTestRegistry(t)

		// Act
		err := registry.Register("list", &mockCommandFactory{name: "list"})

		// Assert
		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "list")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		// Arrange
		registry, _, _ := newTestRegistry(t)
		factory := &mockCommandFactory{name: "list"}

		// Act
		_ = registry.Register("list", factory)
		err := registry.Register("list", factory)

		// Assert
		assert.EqualError(t, err, "Command 'list' is already registered.")
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	t.Run("should create commands in registration order", func(t *testing.T) {
		// Arrange
		registry, _, _ := newTestRegistry(t)
		for _, name := range []string{"login", "list", "add", "delete"} {
			require.NoError(t, registry.Register(name, &mockCommandFactory{name: name}))
		}

		// Act
		commands := registry.CreateCommands()

		// Assert
		names := make([]string, 0, len(commands))
		for _, c := range commands {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"login", "list", "add", "delete"}, names)
	})

	t.Run("should return empty slice when no factories registered", func(t *testing.T) {
		registry, _, _ := newTestRegistry(t)

		commands := registry.CreateCommands()

		assert.Empty(t, commands)
	})
}

func TestNewRegistry(t *testing.T) {
	t.Run("should create new registry with empty factories", func(t *testing.T) {
		// Act
		registry, cfg, translations := newTestRegistry(t)

		// Assert
		assert.NotNil(t, registry)
		assert.Empty(t, registry.factories)
		assert.Equal(t, cfg, registry.config)
		assert.Equal(t, translations, registry.t)
	})
}
