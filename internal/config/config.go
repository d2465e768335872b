// Package config loads packgen settings.
//
// Priority (highest to lowest):
//  1. Environment variables with the PACKGEN_ prefix (PACKGEN_OUTPUT_DIR),
//     including any loaded from a .env file
//  2. packgen.yaml, or the file passed to Load
//  3. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Catalog drivers.
const (
	DriverMemory = "memory"
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config is the full application configuration.
type Config struct {
	Site    SiteConfig
	Output  OutputConfig
	Catalog CatalogConfig
	Packs   PacksConfig
	Log     LogConfig
	Workers int
}

// SiteConfig holds the brand strings printed in every document.
type SiteConfig struct {
	Brand string // header band and cover, "PROTEINCOOKIES.COM"
	Name  string // closing paragraph, "ProteinCookies.com"
	URL   string // cover footer, "proteincookies.com"
	Slug  string // file name prefix, "proteincookies"
}

type OutputConfig struct {
	Dir string
}

// CatalogConfig selects where recipes come from. Path is the JSON file or
// SQLite database; it is ignored by the memory driver.
type CatalogConfig struct {
	Driver   string
	Path     string
	CacheTTL time.Duration // zero caches for the whole run
}

// PacksConfig points at a YAML pack list. Empty means the built-in packs.
type PacksConfig struct {
	Path string
}

type LogConfig struct {
	Level string // off, normal, verbose
	File  string // empty means stderr
}

var defaults = map[string]any{
	"site.brand":        "PROTEINCOOKIES.COM",
	"site.name":         "ProteinCookies.com",
	"site.url":          "proteincookies.com",
	"site.slug":         "proteincookies",
	"output.dir":        "guides",
	"catalog.driver":    DriverJSON,
	"catalog.path":      "data/recipes.json",
	"catalog.cache_ttl": "0",
	"packs.path":        "",
	"log.level":         "normal",
	"log.file":          "",
	"workers":           1,
}

// Load reads the configuration. path names a config file; when empty,
// packgen.yaml is looked up in the working directory and is optional.
func Load(path string) (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("packgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PACKGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// An empty variable clears a setting rather than being ignored.
	v.AllowEmptyEnv(true)

	cfg := &Config{
		Site: SiteConfig{
			Brand: v.GetString("site.brand"),
			Name:  v.GetString("site.name"),
			URL:   v.GetString("site.url"),
			Slug:  v.GetString("site.slug"),
		},
		Output: OutputConfig{
			Dir: v.GetString("output.dir"),
		},
		Catalog: CatalogConfig{
			Driver:   strings.ToLower(v.GetString("catalog.driver")),
			Path:     v.GetString("catalog.path"),
			CacheTTL: v.GetDuration("catalog.cache_ttl"),
		},
		Packs: PacksConfig{
			Path: v.GetString("packs.path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Workers: v.GetInt("workers"),
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Driver {
	case DriverMemory:
	case DriverJSON, DriverSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("config: catalog.path is required for the %s driver", c.Catalog.Driver)
		}
	default:
		return fmt.Errorf("config: unknown catalog.driver %q", c.Catalog.Driver)
	}
	if c.Output.Dir == "" {
		return errors.New("config: output.dir is empty")
	}
	return nil
}
