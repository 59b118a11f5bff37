// Package config loads scorer settings from config.yaml and AISCORE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"aiscore/internal/aidetect"
	"aiscore/internal/workspace"
)

const envPrefix = "AISCORE"

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

type StorageConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`
}

type Config struct {
	Weights aidetect.Weights      `mapstructure:"weights" yaml:"weights" json:"weights"`
	Log     LogConfig             `mapstructure:"log" yaml:"log" json:"log"`
	Storage StorageConfig         `mapstructure:"storage" yaml:"storage" json:"storage"`
	Server  ServerConfig          `mapstructure:"server" yaml:"server" json:"server"`
	Segment aidetect.WindowConfig `mapstructure:"segment" yaml:"segment" json:"segment"`
}

const (
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultServerAddr = ":8088"
)

// newViper registers every key with its default so AISCORE_SECTION_FIELD
// variables resolve even when no config file mentions the key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	w := aidetect.DefaultWeights()
	v.SetDefault("weights.predictability", w.Predictability)
	v.SetDefault("weights.dispersion", w.Dispersion)
	v.SetDefault("weights.entropy", w.Entropy)
	v.SetDefault("weights.stylometry", w.Stylometry)
	v.SetDefault("weights.fingerprint", w.Fingerprint)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("storage.path", defaultStoragePath())
	v.SetDefault("server.addr", DefaultServerAddr)

	seg := aidetect.DefaultWindowConfig()
	v.SetDefault("segment.words", seg.Words)
	v.SetDefault("segment.overlap", seg.Overlap)
	v.SetDefault("segment.workers", runtime.NumCPU())
	return v
}

func defaultStoragePath() string {
	root, err := workspace.DefaultRoot()
	if err != nil {
		return workspace.HistoryDBName
	}
	return workspace.HistoryPath(root)
}

// Load reads the YAML file at path, applies AISCORE_* overrides and defaults,
// and validates the result. An empty path behaves like LoadFromEnv.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}
	return unmarshalAndValidate(v)
}

// LoadFromEnv builds a Config from defaults and AISCORE_* variables only.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndValidate(newViper())
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

func (c *Config) Validate() error {
	var errs []error
	if err := c.Weights.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !oneOf(c.Log.Level, validLevels) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v, got %q", validLevels, c.Log.Level))
	}
	if !oneOf(c.Log.Format, validFormats) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v, got %q", validFormats, c.Log.Format))
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		errs = append(errs, errors.New("storage.path is required"))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Segment.Words <= 0 {
		errs = append(errs, fmt.Errorf("segment.words must be positive, got %d", c.Segment.Words))
	}
	if c.Segment.Overlap < 0 || c.Segment.Overlap >= c.Segment.Words {
		errs = append(errs, fmt.Errorf("segment.overlap must be in [0, segment.words), got %d", c.Segment.Overlap))
	}
	if c.Segment.Workers < 0 {
		errs = append(errs, fmt.Errorf("segment.workers must not be negative, got %d", c.Segment.Workers))
	}
	return errors.Join(errs...)
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
