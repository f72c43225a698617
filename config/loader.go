package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied after loading; zero values in the file fall back to these.
const (
	DefaultPort             = 17180
	DefaultOSRMURL          = "https://router.project-osrm.org"
	DefaultTimeoutMS        = 10000
	DefaultRerouteTimeoutMS = 5000
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads the application configuration from config.yml, applies
// NAV_* environment overrides, validates it and fills defaults.
func LoadAppConfig() error {
	return LoadAppConfigFrom("config.yml", "./config/config.yml")
}

// LoadAppConfigFrom tries each path in order; the first readable file wins.
// A missing file is not an error: env overrides and defaults still apply.
func LoadAppConfigFrom(paths ...string) error {
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		break
	}
	if err := env.Parse(&cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Routing.OSRMURL == "" {
		cfg.Routing.OSRMURL = DefaultOSRMURL
	}
	if cfg.Routing.TimeoutMS == 0 {
		cfg.Routing.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Routing.RerouteTimeoutMS == 0 {
		cfg.Routing.RerouteTimeoutMS = DefaultRerouteTimeoutMS
	}
	// Guidance zeros mean "use the engine defaults"; the session applies its
	// own fallbacks, so nothing to fill here.
}
