package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_JSON dumps every audit record as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized step headers
	Colours       bool   `envconfig:"E2E_COLOURS" default:"true"`
	CensoredWords string `envconfig:"E2E_CENSORED_WORDS" default:"hairball,squirrel"`
	AuditLimit    int    `envconfig:"E2E_AUDIT_LIMIT" default:"100"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
