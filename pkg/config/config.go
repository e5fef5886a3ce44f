// Package config loads the optional skiff.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-skiff/skiff/pkg/rendering"
)

// DefaultDebugPort is the debug server port when none is configured.
const DefaultDebugPort = 8421

// DefaultCacheSize is the render-tree cache capacity when none is configured.
const DefaultCacheSize = 32

// Config represents the optional skiff.yaml configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Debug   DebugConfig   `yaml:"debug"`
	Storage StorageConfig `yaml:"storage"`
}

// EngineConfig contains render pipeline settings.
type EngineConfig struct {
	// FontFamily overrides the user-agent font family.
	FontFamily string `yaml:"font_family,omitempty"`
	// CacheSize bounds the render-tree cache; 0 keeps the default.
	CacheSize int `yaml:"cache_size,omitempty"`
	// Styles overrides per-element text styles.
	Styles map[string]StyleConfig `yaml:"styles,omitempty"`
}

// StyleConfig is a per-element style override. Unset fields keep the
// user-agent value.
type StyleConfig struct {
	FontFamily string  `yaml:"font_family,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty"`
	Bold       *bool   `yaml:"bold,omitempty"`
}

// DebugConfig contains debug server settings.
type DebugConfig struct {
	Port int `yaml:"port,omitempty"`
}

// StorageConfig contains client storage settings.
type StorageConfig struct {
	// Path is the SQLite database file; empty selects in-memory storage.
	Path string `yaml:"path,omitempty"`
	// SessionPersistence keeps profile data across sessions; defaults to true.
	SessionPersistence *bool `yaml:"session_persistence,omitempty"`
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	FontFamily         string
	CacheSize          int
	Stylesheet         *rendering.Stylesheet
	DebugPort          int
	StoragePath        string
	SessionPersistence bool
}

// LoadOptional reads skiff.yaml from dir if present. A missing file yields
// an empty configuration, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "skiff.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read skiff.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse skiff.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads skiff.yaml (if present) and resolves defaults. The default
// stylesheet is the user-agent stylesheet with any configured overrides
// applied on top.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve applies defaults to an already-loaded configuration.
func (c *Config) Resolve() (*Resolved, error) {
	family := strings.TrimSpace(c.Engine.FontFamily)
	if family == "" {
		family = rendering.DefaultFontFamily
	}

	sheet := rendering.DefaultStylesheet()
	if family != rendering.DefaultFontFamily {
		fallback := sheet.Fallback()
		fallback.FontFamily = family
		sheet.SetFallback(fallback)
		for _, name := range []string{"h1", "h2", "h3", "h4", "h5", "h6", "p"} {
			style, _ := sheet.Rule(name)
			style.FontFamily = family
			sheet.SetRule(name, style)
		}
	}

	for name, override := range c.Engine.Styles {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("empty element name in engine.styles")
		}
		style, ok := sheet.Rule(name)
		if !ok {
			style = sheet.Fallback()
		}
		if override.FontFamily != "" {
			style.FontFamily = override.FontFamily
		}
		if override.FontSize != 0 {
			if override.FontSize < 0 {
				return nil, fmt.Errorf("negative font size for %q", name)
			}
			style.FontSize = override.FontSize
		}
		if override.Bold != nil {
			if *override.Bold {
				style.FontWeight = rendering.FontWeightBold
			} else {
				style.FontWeight = rendering.FontWeightNormal
			}
		}
		sheet.SetRule(name, style)
	}

	cacheSize := c.Engine.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	port := c.Debug.Port
	if port <= 0 {
		port = DefaultDebugPort
	}

	persist := true
	if c.Storage.SessionPersistence != nil {
		persist = *c.Storage.SessionPersistence
	}

	return &Resolved{
		FontFamily:         family,
		CacheSize:          cacheSize,
		Stylesheet:         sheet,
		DebugPort:          port,
		StoragePath:        c.Storage.Path,
		SessionPersistence: persist,
	}, nil
}
