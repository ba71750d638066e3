package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/texweave/texweave/pkg/cache"
	"github.com/texweave/texweave/pkg/errors"
)

// Config is the contents of config.toml.
//
//	[document]
//	class = "article"
//	packages = ["amsmath", "graphicx"]
//
//	[cache]
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
type Config struct {
	Document DocumentConfig `toml:"document"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
	Redis    RedisConfig    `toml:"redis"`
	Mongo    MongoConfig    `toml:"mongo"`
}

type DocumentConfig struct {
	Class    string   `toml:"class"`
	Packages []string `toml:"packages"`
}

type CacheConfig struct {
	Dir      string `toml:"dir"`
	TTL      string `toml:"ttl"`
	Disabled bool   `toml:"disabled"`
}

type ServerConfig struct {
	Addr    string `toml:"addr"`
	APIKey  string `toml:"api_key"`
	MaxBody int64  `toml:"max_body"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Document: DocumentConfig{Class: "article"},
		Server:   ServerConfig{Addr: ":8080"},
	}
}

// CacheTTL returns the parsed cache TTL, or cache.DefaultTTL.
func (c Config) CacheTTL() time.Duration {
	if d, err := time.ParseDuration(c.Cache.TTL); err == nil && d > 0 {
		return d
	}
	return cache.DefaultTTL
}

func (c Config) validate() error {
	if c.Cache.TTL != "" {
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "cache.ttl")
		}
	}
	for _, p := range c.Document.Packages {
		if err := errors.ValidatePackageName(p); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file yields DefaultConfig; a missing explicit file is
// an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeIO, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
