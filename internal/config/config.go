package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 5000
	defaultMaxContentChars = 10000
	defaultMaxUploadBytes  = 10 * 1024 * 1024
	defaultMaxBatchItems   = 50
	defaultRateLimit       = 60
	defaultLogLevel        = "info"
)

func checkFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return fmt.Errorf("config file %s has insecure permissions %04o; should be 0600", path, perm)
	}
	return nil
}

type Config struct {
	Server Server     `yaml:"server"`
	Limits Limits     `yaml:"limits"`
	SMTP   SMTPConfig `yaml:"smtp,omitempty"`
	Log    Log        `yaml:"log,omitempty"`
}

type Server struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Limits bound request handling. MaxContentChars applies to the text
// handed to the classifier, MaxUploadBytes to multipart bodies,
// RateLimit to requests per client per minute.
type Limits struct {
	MaxContentChars int `yaml:"max_content_chars"`
	MaxUploadBytes  int `yaml:"max_upload_bytes"`
	MaxBatchItems   int `yaml:"max_batch_items"`
	RateLimit       int `yaml:"rate_limit"`
}

// SMTPConfig is only required when reply dispatch is used.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	UseTLS   bool   `yaml:"use_tls"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Host:        defaultHost,
			Port:        defaultPort,
			CORSOrigins: []string{"*"},
		},
		Limits: Limits{
			MaxContentChars: defaultMaxContentChars,
			MaxUploadBytes:  defaultMaxUploadBytes,
			MaxBatchItems:   defaultMaxBatchItems,
			RateLimit:       defaultRateLimit,
		},
		Log: Log{Level: defaultLogLevel},
	}
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".mailtriage", "config.yaml")
}

func Load(path string) (*Config, error) {
	if err := checkFilePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %v\n", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Limits.MaxContentChars == 0 {
		cfg.Limits.MaxContentChars = defaultMaxContentChars
	}
	if cfg.Limits.MaxUploadBytes == 0 {
		cfg.Limits.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Limits.MaxBatchItems == 0 {
		cfg.Limits.MaxBatchItems = defaultMaxBatchItems
	}
	if cfg.Limits.RateLimit == 0 {
		cfg.Limits.RateLimit = defaultRateLimit
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}

func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server: port %d out of range", c.Server.Port)
	}
	if c.Limits.MaxContentChars < 1 {
		return fmt.Errorf("limits: max_content_chars must be positive")
	}
	if c.Limits.MaxUploadBytes < 1 {
		return fmt.Errorf("limits: max_upload_bytes must be positive")
	}
	if c.Limits.MaxBatchItems < 1 {
		return fmt.Errorf("limits: max_batch_items must be positive")
	}
	return nil
}

// ValidateSMTP is only called when reply dispatch is requested.
func (c *Config) ValidateSMTP() error {
	if c.SMTP.Host == "" {
		return fmt.Errorf("smtp: host is required")
	}
	if c.SMTP.Port == 0 {
		return fmt.Errorf("smtp: port is required")
	}
	if c.SMTP.From == "" {
		return fmt.Errorf("smtp: from address is required")
	}
	return nil
}
