package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vcardqr/pkg/config"
)

type qrConfig struct {
	BoxSize   int      `env:"QR_BOX_SIZE" envDefault:"10"`
	FillColor string   `env:"QR_FILL_COLOR" envDefault:"#0050B5"`
	Shape     string   `env:"QR_SHAPE" envDefault:"square"`
	UseLogo   bool     `env:"QR_USE_LOGO" envDefault:"true"`
	Levels    []string `env:"QR_LEVELS" envSeparator:","`
}

type requiredConfig struct {
	Bucket string `env:"BUCKET,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults apply to an empty environment", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))

		assert.Equal(t, 10, cfg.BoxSize)
		assert.Equal(t, "#0050B5", cfg.FillColor)
		assert.Equal(t, "square", cfg.Shape)
		assert.True(t, cfg.UseLogo)
	})

	t.Run("environment values are parsed", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"QR_BOX_SIZE": "4",
			"QR_USE_LOGO": "false",
			"QR_LEVELS":   "H,Q",
		}))
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.BoxSize)
		assert.False(t, cfg.UseLogo)
		assert.Equal(t, []string{"H", "Q"}, cfg.Levels)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		err := config.Load(&cfg,
			config.WithEnvFiles("testdata/base.env", "testdata/override.env"),
			config.WithEnvironment(map[string]string{}),
		)
		require.NoError(t, err)

		assert.Equal(t, 14, cfg.BoxSize)
		assert.Equal(t, "#112233", cfg.FillColor)
		assert.Equal(t, "circle", cfg.Shape)
		assert.Equal(t, []string{"L", "M"}, cfg.Levels)
	})

	t.Run("environment wins over files", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		err := config.Load(&cfg,
			config.WithEnvFiles("testdata/base.env"),
			config.WithEnvironment(map[string]string{"QR_BOX_SIZE": "20"}),
		)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.BoxSize)
		assert.Equal(t, "circle", cfg.Shape)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		err := config.Load(&cfg,
			config.WithPrefix("STAGING_"),
			config.WithEnvironment(map[string]string{"STAGING_QR_BOX_SIZE": "6", "QR_BOX_SIZE": "99"}),
		)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.BoxSize)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"QR_BOX_SIZE": "ten"}))
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("missing required value", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()
		var cfg qrConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/absent.env"))
		assert.True(t, errors.Is(err, config.ErrLoadingEnvFile))
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *qrConfig
		assert.True(t, errors.Is(config.Load(cfg), config.ErrNilPointer))
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		var cfg qrConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
