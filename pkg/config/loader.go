package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type options struct {
	envFiles    []string
	prefix      string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles reads the given .env files in order. Each file must exist.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithPrefix prepends prefix to every env key looked up.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment replaces the process environment as the source of
// variables. Values from env files are still merged underneath.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load populates v from env files and environment variables.
//
// Example:
//
//	type StorageConfig struct {
//		Backend string `env:"QR_STORAGE" envDefault:"local"`
//		Dir     string `env:"QR_STORAGE_DIR" envDefault:"."`
//	}
//
//	var sc StorageConfig
//	err := config.Load(&sc)
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := readEnvFiles(o.envFiles)
	if err != nil {
		return err
	}

	if o.environment != nil {
		for k, val := range o.environment {
			vars[k] = val
		}
	} else {
		for k, val := range env.ToMap(os.Environ()) {
			vars[k] = val
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func readEnvFiles(paths []string) (map[string]string, error) {
	vars := make(map[string]string)

	if len(paths) == 0 {
		// The default file is optional
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return vars, nil
		}
		paths = []string{defaultEnvFile}
	}

	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		fileVars, err := godotenv.Read(p)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}
	return vars, nil
}
