package manifest

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven manifest settings.
type Config struct {
	// Path is the location of the declarative channel file.
	Path string `env:"OBSERVER_MANIFEST_PATH" envDefault:"observer.yaml"`

	// Watch enables hot-reload of the manifest file.
	Watch bool `env:"OBSERVER_MANIFEST_WATCH" envDefault:"false"`
}

// LoadConfig reads Config from environment variables, loading a .env file
// first when one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse manifest config: %w", err)
	}
	return cfg, nil
}
