package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "smartlibrary.yaml"

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:8080"

// Config holds all configuration for the CLI
type Config struct {
	// API Configuration
	API APIConfig

	// Session storage Configuration
	Storage StorageConfig

	// Chat Configuration
	Chat ChatConfig

	// Logging Configuration
	Logging LoggingConfig
}

// APIConfig holds backend API configuration
type APIConfig struct {
	BaseURL string
}

// StorageConfig holds session storage configuration
type StorageConfig struct {
	Backend string // keyring, file
}

// ChatConfig holds library assistant chat configuration
type ChatConfig struct {
	Language string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// fileConfig is the yaml shape of smartlibrary.yaml
type fileConfig struct {
	APIURL    string `yaml:"api_url"`
	Storage   string `yaml:"storage"`
	Language  string `yaml:"language"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load loads configuration with increasing precedence:
// built-in defaults, smartlibrary.yaml, environment variables.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		API:     APIConfig{BaseURL: DefaultBaseURL},
		Storage: StorageConfig{Backend: "keyring"},
		Chat:    ChatConfig{Language: "en"},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}

	if path, err := findConfigFile(); err == nil {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

// findConfigFile searches for smartlibrary.yaml in the current directory
// and parent directories.
func findConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, currentDir)
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.APIURL != "" {
		cfg.API.BaseURL = fc.APIURL
	}
	if fc.Storage != "" {
		cfg.Storage.Backend = fc.Storage
	}
	if fc.Language != "" {
		cfg.Chat.Language = fc.Language
	}
	if fc.LogLevel != "" {
		cfg.Logging.Level = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.Logging.Format = fc.LogFormat
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SMARTLIBRARY_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("SMARTLIBRARY_STORAGE"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("SMARTLIBRARY_LANGUAGE"); v != "" {
		cfg.Chat.Language = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
