package config

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/venuely/internal/workspace"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultYAML []byte

// Config defines venuely client settings. Every field can be overridden
// with an environment variable.
type Config struct {
	Endpoint string        `yaml:"endpoint" env:"VENUELY_ENDPOINT"`
	Timeout  time.Duration `yaml:"timeout" env:"VENUELY_TIMEOUT"`
	Cache    Cache         `yaml:"cache"`
}

// Cache defines the local cache location.
type Cache struct {
	URL string `yaml:"url" env:"VENUELY_CACHE_URL"`
	Key string `yaml:"key" env:"VENUELY_CACHE_KEY"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	return cfg, nil
}

// Load loads the config from URL, creating it from the embedded default when
// missing. An empty URL resolves to config.yaml in the workspace root. The
// result has environment overrides applied and path macros expanded.
func Load(ctx context.Context, URL string) (*Config, error) {
	if strings.TrimSpace(URL) == "" {
		URL = filepath.Join(workspace.Root(), "config.yaml")
	}
	cfg, err := loadOrCreate(ctx, afs.New(), URL)
	if err != nil {
		return nil, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Init()
	return cfg, nil
}

// ParseEnv applies environment variable overrides to target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Init fills in defaults and expands path macros.
func (c *Config) Init() {
	if strings.TrimSpace(c.Endpoint) == "" {
		c.Endpoint = "http://localhost:8080"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if strings.TrimSpace(c.Cache.Key) == "" {
		c.Cache.Key = "venues"
	}
	if strings.TrimSpace(c.Cache.URL) == "" {
		c.Cache.URL = "file://" + filepath.ToSlash(workspace.Path(workspace.KindCache))
	}
	c.Cache.URL = workspace.ResolvePathTemplate(c.Cache.URL)
}

func loadOrCreate(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, err
	}
	if exists {
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, err
		}
		cfg := &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", URL, err)
		}
		return cfg, nil
	}
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	parent, _ := url.Split(URL, file.Scheme)
	if strings.TrimSpace(parent) != "" {
		if ok, _ := fs.Exists(ctx, parent); !ok {
			_ = fs.Create(ctx, parent, file.DefaultDirOsMode, true)
		}
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(defaultYAML)); err != nil {
		return nil, err
	}
	return cfg, nil
}
