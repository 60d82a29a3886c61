package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all environment-driven settings.
type Config struct {
	OutputPath string
	LogLevel   string
	LogFile    string
	Strict     bool
}

type fileConfig struct {
	Output   string `json:"output" yaml:"output"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file"`
}

const (
	defaultOutput   = "isce_log.csv"
	defaultLogLevel = "info"
)

// Load reads configuration from the environment, an optional .env file, and
// an optional config file at CONFIG_PATH. Everything has a default; a run
// with no environment set behaves exactly like the stock tool.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Strict: parseBoolEnv("STRICT_CONFIG"),
	}

	configPath := getEnv("CONFIG_PATH", filepath.Join("config", "config.yaml"))
	fileCfg, fileErr := loadFileConfig(configPath)
	if fileErr != nil && !os.IsNotExist(fileErr) {
		if cfg.Strict {
			return cfg, fmt.Errorf("config load failed (%s): %w", configPath, fileErr)
		}
		log.Printf("config load failed (%s): %v (using defaults)", configPath, fileErr)
	}

	cfg.OutputPath = firstNonEmpty(os.Getenv("ISCE_OUTPUT"), fileCfg.Output, defaultOutput)
	cfg.LogLevel = strings.ToLower(firstNonEmpty(os.Getenv("ISCE_LOG_LEVEL"), fileCfg.LogLevel, defaultLogLevel))
	cfg.LogFile = firstNonEmpty(os.Getenv("ISCE_LOG_FILE"), fileCfg.LogFile)

	switch cfg.LogLevel {
	case "error", "info", "verbose", "debug":
	default:
		log.Printf("unknown log level %q, using %s", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, fmt.Errorf("empty config file")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, val := range values {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}
