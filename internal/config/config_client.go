package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the dashboard server.
	// Env: DASHBOARD_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: DASHBOARD_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"DASHBOARD_"`

	// Email and Password are the credentials used to open a session.
	Email    string `env:"DASHBOARD_EMAIL"`
	Password string `env:"DASHBOARD_PASSWORD"`
}

// GetClientConfig builds and validates the client configuration from the
// environment and the given flag set. Flags take precedence over the
// environment. fs must not be parsed yet; the remaining positional
// arguments are left in fs.Args().
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	address := fs.String("a", cfg.Adapter.HTTPAddress, "dashboard server address")
	timeout := fs.Duration("timeout", cfg.Adapter.RequestTimeout, "request timeout")
	email := fs.String("email", cfg.Email, "user e-mail")
	password := fs.String("password", cfg.Password, "user password")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg.Adapter.HTTPAddress = *address
	cfg.Adapter.RequestTimeout = *timeout
	cfg.Email = *email
	cfg.Password = *password

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	return cfg, cfg.validate()
}

// DefaultClientFlagSet returns the flag set used by the client binary.
func DefaultClientFlagSet() *flag.FlagSet {
	return flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}
