package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIAddr string `envconfig:"API_ADDR"`
	Token   string `envconfig:"API_TOKEN"`

	InviteRef string `envconfig:"E2E_INVITE_REF"`

	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	Colours   bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
