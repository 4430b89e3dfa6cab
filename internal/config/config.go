package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ContractConfig identifies the marketplace contract the commands target.
type ContractConfig struct {
	PackageID     string
	Module        string
	NftStruct     string
	ListingStruct string
	ListFunction  string
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("MARKETSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("nft-struct", "DevNetNFT")
	v.SetDefault("listing-struct", "Listing")
	v.SetDefault("list-function", "list_nft_for_sale")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func contractFromViper(v *viper.Viper) ContractConfig {
	return ContractConfig{
		PackageID:     v.GetString("package"),
		Module:        v.GetString("module"),
		NftStruct:     v.GetString("nft-struct"),
		ListingStruct: v.GetString("listing-struct"),
		ListFunction:  v.GetString("list-function"),
	}
}

// Validate checks the fields every command needs.
func (c ContractConfig) Validate() error {
	if c.PackageID == "" {
		return fmt.Errorf("package id is required")
	}
	if c.Module == "" {
		return fmt.Errorf("module name is required")
	}
	return nil
}
