package config

import "github.com/spf13/pflag"

// OwnedConfig holds settings for the owned command.
type OwnedConfig struct {
	RPCURL   string
	Contract ContractConfig
	Owner    string
	Out      string
	LogLevel string
}

// LoadOwned merges config file, environment variables, and flags.
func LoadOwned(cfgFile string, flags *pflag.FlagSet) (OwnedConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return OwnedConfig{}, err
	}

	return OwnedConfig{
		RPCURL:   v.GetString("rpc"),
		Contract: contractFromViper(v),
		Owner:    v.GetString("owner"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}, nil
}
