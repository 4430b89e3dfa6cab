package config

import "github.com/spf13/pflag"

// GalleryConfig holds settings for the gallery command.
type GalleryConfig struct {
	RPCURL   string
	Contract ContractConfig
	Session  string
	Out      string
	LogLevel string
}

// LoadGallery merges config file, environment variables, and flags.
func LoadGallery(cfgFile string, flags *pflag.FlagSet) (GalleryConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return GalleryConfig{}, err
	}

	return GalleryConfig{
		RPCURL:   v.GetString("rpc"),
		Contract: contractFromViper(v),
		Session:  v.GetString("session"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}, nil
}
