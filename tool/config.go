package tool

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/moyoez/portfolio-resolver/types"
)

const DefaultConfigName = "config.yaml"

type ClientConfig struct {
	UserAgent         string  `yaml:"userAgent"`
	TimeoutSeconds    int     `yaml:"timeoutSeconds"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	CacheTTLSeconds   int     `yaml:"cacheTtlSeconds"`
}

func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c ClientConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
	HTTPS  bool   `yaml:"https"`
}

type NotifyConfig struct {
	URL string `yaml:"url"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
	Dir  string `yaml:"dir"`
}

// AppConfig is the on-disk configuration.
type AppConfig struct {
	Repository types.Repository `yaml:"repository"`
	Client     ClientConfig     `yaml:"client"`
	Server     ServerConfig     `yaml:"server"`
	Notify     NotifyConfig     `yaml:"notify"`
	Log        LogConfig        `yaml:"log"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Repository: types.Repository{
			Owner: "raghul07102002",
			Name:  "portfolio-data",
		}.WithDefaults(),
		Client: ClientConfig{
			UserAgent:      "Portfolio-App",
			TimeoutSeconds: int(DefaultTimeout / time.Second),
		},
		Server: ServerConfig{Listen: ":8080"},
		Log:    LogConfig{Mode: "dev"},
	}
}

// LoadConfig reads path over the defaults. An empty path looks for config.yaml
// next to the executable and silently uses defaults when it is absent.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	explicit := path != ""
	if !explicit {
		dir := GetRunPositionDir()
		if dir == "" {
			return cfg, nil
		}
		path = filepath.Join(dir, DefaultConfigName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Repository = cfg.Repository.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	if c.Repository.Owner == "" || c.Repository.Name == "" {
		return fmt.Errorf("config: repository owner and name are required")
	}
	if c.Client.RequestsPerSecond < 0 {
		return fmt.Errorf("config: client.requestsPerSecond must not be negative")
	}
	if c.Client.CacheTTLSeconds < 0 {
		return fmt.Errorf("config: client.cacheTtlSeconds must not be negative")
	}
	return nil
}

// ApplyFlags overlays non-empty CLI overrides.
func (c *AppConfig) ApplyFlags(f Flags) {
	if f.Log != "" {
		c.Log.Mode = f.Log
	}
	if f.UseListen != "" {
		c.Server.Listen = f.UseListen
	}
	if f.UseOwner != "" {
		c.Repository.Owner = f.UseOwner
	}
	if f.UseRepo != "" {
		c.Repository.Name = f.UseRepo
	}
}

// GetRunPositionDir returns the directory of the running executable.
func GetRunPositionDir() string {
	exePath, err := os.Executable()
	if err != nil {
		return ""
	}
	exePath, err = filepath.EvalSymlinks(exePath)
	if err != nil {
		return ""
	}
	return filepath.Dir(exePath)
}
