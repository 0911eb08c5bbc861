package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kerbaras/scriptures/pkg/sources"
)

const EnvPrefix = "SCRIPTURES_"

type MarkersConfig struct {
	InitialDelay time.Duration `yaml:"initial_delay" koanf:"initial_delay"`
	MaxAttempts  int           `yaml:"max_attempts" koanf:"max_attempts"`
}

type Config struct {
	BaseURL     string        `yaml:"base_url" koanf:"base_url"`
	BooksPath   string        `yaml:"books_path" koanf:"books_path"`
	VolumesPath string        `yaml:"volumes_path" koanf:"volumes_path"`
	ChapterPath string        `yaml:"chapter_path" koanf:"chapter_path"`
	Timeout     time.Duration `yaml:"timeout" koanf:"timeout"`

	DBPath    string  `yaml:"db_path" koanf:"db_path"`
	LogFile   string  `yaml:"log_file" koanf:"log_file"`
	LogLevel  string  `yaml:"log_level" koanf:"log_level"`
	ExportDir string  `yaml:"export_dir" koanf:"export_dir"`
	ExportRPS float64 `yaml:"export_rate" koanf:"export_rate"` // chapter requests per second

	Markers MarkersConfig `yaml:"markers" koanf:"markers"`
}

// DefaultConfig returns a Config pointing at the public mapscrip service and
// keeping local state under ~/.scriptures.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(home, ".scriptures")

	return &Config{
		BaseURL:     sources.DefaultBaseURL,
		BooksPath:   sources.DefaultBooksPath,
		VolumesPath: sources.DefaultVolumesPath,
		ChapterPath: sources.DefaultChapterPath,
		Timeout:     15 * time.Second,
		DBPath:      filepath.Join(stateDir, "scriptures.db"),
		LogFile:     filepath.Join(stateDir, "scriptures.log"),
		LogLevel:    "info",
		ExportDir:   filepath.Join(home, "Downloads"),
		ExportRPS:   2,
		Markers: MarkersConfig{
			InitialDelay: 500 * time.Millisecond,
			MaxAttempts:  4,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SCRIPTURES_*). A missing file is not an
// error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps an environment variable to its config key:
// SCRIPTURES_BASE_URL -> base_url, SCRIPTURES_MARKERS_MAX_ATTEMPTS -> markers.max_attempts.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// nested config sections
var sections = []string{"markers"}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.BooksPath == "" || c.VolumesPath == "" || c.ChapterPath == "" {
		return fmt.Errorf("books_path, volumes_path and chapter_path are required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.ExportRPS <= 0 {
		return fmt.Errorf("export_rate must be positive")
	}
	if c.Markers.InitialDelay <= 0 {
		return fmt.Errorf("markers.initial_delay must be positive")
	}
	if c.Markers.MaxAttempts < 1 {
		return fmt.Errorf("markers.max_attempts must be at least 1")
	}
	return nil
}
