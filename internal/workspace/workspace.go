// Package workspace manages the on-disk home of the scorer: config, reports
// and the history database.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"aiscore/internal/aidetect"
)

const (
	BaseDirName    = "AIScore"
	ConfigFileName = "config.yaml"
	HistoryDBName  = "history.db"
)

type logDefaults struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults is the content of a freshly written config.yaml.
type Defaults struct {
	Weights aidetect.Weights      `yaml:"weights"`
	Log     logDefaults           `yaml:"log"`
	Segment aidetect.WindowConfig `yaml:"segment"`
}

func DefaultSettings() Defaults {
	return Defaults{
		Weights: aidetect.DefaultWeights(),
		Log:     logDefaults{Level: "info", Format: "console"},
		Segment: aidetect.DefaultWindowConfig(),
	}
}

// DefaultRoot is ~/AIScore.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, BaseDirName), nil
}

func EnsureDefault() (string, error) {
	root, err := DefaultRoot()
	if err != nil {
		return "", err
	}
	return EnsureAt(root)
}

// EnsureAt creates the workspace layout under base and writes a default
// config file unless one exists. Existing files are never overwritten.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "reports"),
		filepath.Join(base, "data"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	configPath := ConfigPath(base)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		raw, marshalErr := yaml.Marshal(DefaultSettings())
		if marshalErr != nil {
			return "", fmt.Errorf("marshal config: %w", marshalErr)
		}
		if writeErr := os.WriteFile(configPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write config: %w", writeErr)
		}
	}

	return base, nil
}

func ConfigPath(base string) string {
	return filepath.Join(base, "configs", ConfigFileName)
}

func HistoryPath(base string) string {
	return filepath.Join(base, "data", HistoryDBName)
}

func ReportsDir(base string) string {
	return filepath.Join(base, "reports")
}
