// Package config loads studyflow settings: built-in defaults, then the user
// YAML file, then STUDYFLOW_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	EnvDB           = "STUDYFLOW_DB"
	EnvHoursPerDay  = "STUDYFLOW_HOURS_PER_DAY"
	EnvHTTPAddr     = "STUDYFLOW_HTTP_ADDR"
	EnvTemplatesDir = "STUDYFLOW_TEMPLATES"
	EnvLogUseCases  = "STUDYFLOW_LOG_USE_CASES"
)

type Config struct {
	DB      DBConfig      `yaml:"db"`
	Planner PlannerConfig `yaml:"planner"`
	HTTP    HTTPConfig    `yaml:"http"`
	Tutor   TutorConfig   `yaml:"tutor"`
	Log     LogConfig     `yaml:"log"`
}

type DBConfig struct {
	// Path is the SQLite file, or ":memory:".
	Path string `yaml:"path"`
}

type PlannerConfig struct {
	HoursPerDay float64 `yaml:"hours_per_day"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type TutorConfig struct {
	// TemplatesDir holds extra *.yaml template files. Empty disables them.
	TemplatesDir string `yaml:"templates_dir"`
}

type LogConfig struct {
	UseCases bool   `yaml:"use_cases"`
	Level    string `yaml:"level"`
}

// DefaultConfig returns a Config rooted at home (usually os.UserHomeDir).
func DefaultConfig(home string) *Config {
	return &Config{
		DB:      DBConfig{Path: filepath.Join(home, ".studyflow", "studyflow.db")},
		Planner: PlannerConfig{HoursPerDay: 6},
		HTTP: HTTPConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Tutor: TutorConfig{TemplatesDir: filepath.Join(home, ".config", "studyflow", "templates")},
		Log:   LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.Planner.HoursPerDay <= 0 || c.Planner.HoursPerDay > 24 {
		return fmt.Errorf("planner.hours_per_day must be in (0, 24], got %v", c.Planner.HoursPerDay)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// LoadFromFile reads a YAML file into a zero Config, so unset keys stay
// zero and Merge leaves the matching defaults alone.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge copies the non-zero fields of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.DB.Path != "" {
		c.DB.Path = other.DB.Path
	}
	if other.Planner.HoursPerDay != 0 {
		c.Planner.HoursPerDay = other.Planner.HoursPerDay
	}
	if other.HTTP.Addr != "" {
		c.HTTP.Addr = other.HTTP.Addr
	}
	if other.HTTP.AllowedOrigins != nil {
		c.HTTP.AllowedOrigins = other.HTTP.AllowedOrigins
	}
	if other.Tutor.TemplatesDir != "" {
		c.Tutor.TemplatesDir = other.Tutor.TemplatesDir
	}
	if other.Log.UseCases {
		c.Log.UseCases = true
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// ApplyEnv overrides c from environment variables read through getenv.
// Unparseable numbers and booleans are reported rather than ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvDB); v != "" {
		c.DB.Path = v
	}
	if v := getenv(EnvHoursPerDay); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHoursPerDay, err)
		}
		c.Planner.HoursPerDay = h
	}
	if v := getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
	if v := getenv(EnvTemplatesDir); v != "" {
		c.Tutor.TemplatesDir = v
	}
	if v := getenv(EnvLogUseCases); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogUseCases, err)
		}
		c.Log.UseCases = b
	}
	return nil
}
