// Package config loads application configuration from environment
// variables and optional `.env` files into tagged structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - `.env` files are read without touching the process environment.
//   - Real environment variables win over values from files; later files
//     win over earlier ones.
//   - Parsing honours the usual `env`, `envDefault` and `required` tags.
//
// Nothing is cached: each Load call parses the sources again, so a CLI
// can load once at startup and tests can inject their own environment.
//
// # Usage
//
//	type Config struct {
//	    BoxSize int    `env:"QR_BOX_SIZE" envDefault:"10"`
//	    Output  string `env:"QR_OUTPUT_PATH" envDefault:"contact_qr_final.png"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles("./deploy/.env")); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Without WithEnvFiles the loader looks for `.env` in the working
// directory and silently skips it when absent. Explicitly named files must
// exist.
//
// # Error Handling
//
//   - `ErrParsingConfig` – failed to parse env vars into the struct.
//   - `ErrLoadingEnvFile` – an env file is missing or malformed.
//   - `ErrNilPointer` – nil pointer passed to `Load`/`MustLoad`.
package config
