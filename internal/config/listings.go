package config

import "github.com/spf13/pflag"

// ListingsConfig holds settings for the listings command.
type ListingsConfig struct {
	RPCURL           string
	Contract         ContractConfig
	TypeScanLimit    int
	PackageScanLimit int
	ReplayLimit      int
	Out              string
	LogLevel         string
}

// LoadListings merges config file, environment variables, and flags.
func LoadListings(cfgFile string, flags *pflag.FlagSet) (ListingsConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ListingsConfig{}, err
	}

	v.SetDefault("type-scan-limit", 36)
	v.SetDefault("package-scan-limit", 50)
	v.SetDefault("replay-limit", 25)

	return ListingsConfig{
		RPCURL:           v.GetString("rpc"),
		Contract:         contractFromViper(v),
		TypeScanLimit:    v.GetInt("type-scan-limit"),
		PackageScanLimit: v.GetInt("package-scan-limit"),
		ReplayLimit:      v.GetInt("replay-limit"),
		Out:              v.GetString("out"),
		LogLevel:         v.GetString("log-level"),
	}, nil
}
