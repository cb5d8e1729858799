// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dimazhornyk/gpn-deploy/pkg/constants"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigFileKey     = "config"
	RPCURLKey         = "rpc-url"
	PrivateKeyKey     = "private-key"
	PrivateKeyFileKey = "private-key-file"
	ArtifactsDirKey   = "artifacts-dir"
	LogLevelKey       = "log-level"
)

// Config resolves settings from flags, GPN_* environment variables and an
// optional config file, in that order of precedence
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(RPCURLKey, constants.DefaultRPCURL)
	v.SetDefault(ArtifactsDirKey, constants.DefaultArtifactsDir)
	v.SetDefault(LogLevelKey, constants.DefaultLogLevel)
	return &Config{v: v}
}

// AddFlags registers the persistent settings on [fs]
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "config file (json, yaml or toml)")
	fs.String(RPCURLKey, constants.DefaultRPCURL, "RPC endpoint of the network to deploy to")
	fs.String(PrivateKeyKey, "", "hex encoded private key of the deployer")
	fs.String(PrivateKeyFileKey, "", "file containing the hex encoded private key of the deployer")
	fs.String(ArtifactsDirKey, constants.DefaultArtifactsDir, "directory holding the compiled contract artifacts")
	fs.String(LogLevelKey, constants.DefaultLogLevel, "log level for the application")
}

// BindFlags makes explicitly set flags take precedence over env and file
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{RPCURLKey, PrivateKeyKey, PrivateKeyFileKey, ArtifactsDirKey, LogLevelKey} {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := c.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// SetConfig reads the config file at [path]. Its extension selects the format.
func (c *Config) SetConfig(path string) error {
	if path == "" {
		return nil
	}
	c.v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		c.v.SetConfigType("json")
	}
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) GetConfigStringValue(key string) string {
	return strings.TrimSpace(c.v.GetString(key))
}

func (c *Config) RPCURL() string {
	return c.GetConfigStringValue(RPCURLKey)
}

func (c *Config) PrivateKey() string {
	return c.GetConfigStringValue(PrivateKeyKey)
}

func (c *Config) PrivateKeyFile() string {
	return c.GetConfigStringValue(PrivateKeyFileKey)
}

func (c *Config) ArtifactsDir() string {
	return c.GetConfigStringValue(ArtifactsDirKey)
}

func (c *Config) LogLevel() string {
	return c.GetConfigStringValue(LogLevelKey)
}
