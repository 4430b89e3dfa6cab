package config

import (
	"time"

	"github.com/spf13/pflag"
)

// ActivityConfig holds settings for the activity command.
type ActivityConfig struct {
	RPCURL       string
	Contract     ContractConfig
	PageSize     int
	Out          string
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadActivity merges config file, environment variables, and flags.
func LoadActivity(cfgFile string, flags *pflag.FlagSet) (ActivityConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ActivityConfig{}, err
	}

	v.SetDefault("page-size", 60)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)

	return ActivityConfig{
		RPCURL:       v.GetString("rpc"),
		Contract:     contractFromViper(v),
		PageSize:     v.GetInt("page-size"),
		Out:          v.GetString("out"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}
