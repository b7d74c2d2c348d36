package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/config"
	"github.com/dmitrymomot/clubledger/pkg/environment"
)

type appConfig struct {
	Name     string                  `env:"APP_NAME" envDefault:"default"`
	Ports    []int                   `env:"APP_PORTS" envSeparator:","`
	Debug    bool                    `env:"APP_DEBUG"`
	Greeting string                  `env:"APP_GREETING"`
	Override string                  `env:"APP_OVERRIDE"`
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Interval time.Duration           `env:"APP_INTERVAL" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults without files", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[appConfig](
			config.WithEnvFiles(),
			config.WithEnviron(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, environment.Development, cfg.Env)
		assert.Equal(t, 5*time.Second, cfg.Interval)
	})

	t.Run("reads env file", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[appConfig](
			config.WithEnvFiles("testdata/app.env"),
			config.WithEnviron(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "clubledger", cfg.Name)
		assert.Equal(t, []int{8080, 8081}, cfg.Ports)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "hello world", cfg.Greeting)
	})

	t.Run("later file overrides earlier", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[appConfig](
			config.WithEnvFiles("testdata/app.env", "testdata/override.env"),
			config.WithEnviron(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "override", cfg.Name)
		assert.Equal(t, "from_file", cfg.Override)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[appConfig](
			config.WithEnvFiles("testdata/app.env"),
			config.WithEnviron(map[string]string{"APP_OVERRIDE": "from_env", "APP_ENV": "prod"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_env", cfg.Override)
		assert.Equal(t, environment.Production, cfg.Env)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[appConfig](
			config.WithEnvFiles(),
			config.WithPrefix("CLUB_"),
			config.WithEnviron(map[string]string{"CLUB_APP_NAME": "prefixed", "APP_NAME": "plain"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "prefixed", cfg.Name)
	})

	t.Run("missing named file", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load[appConfig](config.WithEnvFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("required variable", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load[requiredConfig](config.WithEnviron(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid environment name", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load[appConfig](config.WithEnviron(map[string]string{"APP_ENV": "qa"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.ErrorContains(t, err, "unknown environment")
	})
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "from_process")

	cfg, err := config.Load[appConfig](config.WithEnvFiles("testdata/app.env"))
	require.NoError(t, err)
	assert.Equal(t, "from_process", cfg.Name)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithEnviron(map[string]string{}))
	})
	cfg := config.MustLoad[requiredConfig](config.WithEnviron(map[string]string{"REQUIRED_SECRET": "s"}))
	assert.Equal(t, "s", cfg.Secret)
}
