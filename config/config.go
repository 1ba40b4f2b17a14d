package config

import (
	"github.com/purl-cli/purl/internal/client"
	"github.com/purl-cli/purl/internal/render"
	"github.com/purl-cli/purl/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Client is the transport configuration
	Client client.Config `conf:"client"`

	// Render is the output configuration
	Render render.Config `conf:"render"`
}

var DefaultConfig = mergedDefaults()

func mergedDefaults() conf.DefaultConfig {
	defaults := conf.DefaultConfig{
		"log_level": "error",
	}

	namespaced := []conf.DefaultConfig{
		conf.MergeDefaults("client", client.DefaultConfig),
		conf.MergeDefaults("render", render.DefaultConfig),
	}

	for _, m := range namespaced {
		for key, val := range m {
			defaults[key] = val
		}
	}

	return defaults
}
