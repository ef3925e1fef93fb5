package bootstrap

import (
	"github.com/kbukum/fcvec/config"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.ServiceConfig (value embedding) satisfies it
// through promoted methods, and may override ApplyDefaults and Validate.
//
//	type AuditConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Vector VectorConfig `yaml:"vector" mapstructure:"vector"`
//	}
//
//	app, err := bootstrap.NewApp(&cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
