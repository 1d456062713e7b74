package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries everything a deployment run needs. String fields are
// seeded from the environment and may be overridden by command line
// flags; the struct is treated as immutable once flag parsing finishes.
type Config struct {
	// Registry is the address of the image registry. When empty, the
	// image is built with a bare repository:tag reference and no
	// registry login is attempted.
	Registry         string `env:"DOCKER_REGISTRY"`
	RegistryUser     string `env:"DOCKER_USR"`
	RegistryPassword string `env:"DOCKER_PSW"`
	Repository       string `env:"DOCKER_REPOSITORY" envDefault:"deployctl-app"`
	Tag              string `env:"DOCKER_TAG" envDefault:"latest"`

	// ChartRepo is the base URL of the chart repository accepting
	// authenticated archive uploads.
	ChartRepo         string `env:"HELM_REPO"`
	ChartRepoUser     string `env:"HELM_USR"`
	ChartRepoPassword string `env:"HELM_PSW"`

	Build    bool
	Push     bool
	PackHelm bool
	PushHelm bool
}

// DefaultFromEnv decodes the environment-sourced defaults into a fresh Config.
func DefaultFromEnv() (*Config, error) {
	return defaultsFrom(env.Options{})
}

func defaultsFrom(opts env.Options) (*Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, fmt.Errorf("decoding environment defaults: %w", err)
	}

	return &c, nil
}

// ImageReference is the full reference the built image is tagged with.
func (c *Config) ImageReference() string {
	if c.Registry == "" {
		return fmt.Sprintf("%s:%s", c.Repository, c.Tag)
	}

	return fmt.Sprintf("%s/%s:%s", c.Registry, c.Repository, c.Tag)
}

// ValidateRegistryAuth ensures that a configured registry comes with a
// complete set of credentials. It must pass before any login attempt.
func (c *Config) ValidateRegistryAuth() error {
	if c.Registry == "" {
		return nil
	}

	if c.RegistryUser == "" || c.RegistryPassword == "" {
		return fmt.Errorf("registry %q requires both a username and a password", c.Registry)
	}

	return nil
}
