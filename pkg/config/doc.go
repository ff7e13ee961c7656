// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// Load parses the environment into any struct annotated with `env` tags and
// caches the result per type, so packages can ask for their configuration
// independently without reparsing. LoadEnv reads explicit .env files, and
// ResetCache clears the cache in tests.
//
//	type Config struct {
//	    Addr     string `env:"FORMD_ADDR" envDefault:":8080"`
//	    RulesDir string `env:"FORMD_RULES_DIR,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
