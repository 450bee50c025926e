package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode bool `env:"DEBUG_MODE"`

	// Ollama
	OllamaBaseURL string        `env:"OLLAMA_BASE_URL"`
	OllamaTimeout time.Duration `env:"OLLAMA_TIMEOUT"` // per-candidate request bound
	// Candidate models in preference order; position 1 is tried first on
	// every call.
	Models []string `env:"OLLAMA_MODELS" envSeparator:";"`

	// Storage
	HistoryDir string `env:"HISTORY_DIR"` // empty = per-OS default
	DBPath     string `env:"DB_PATH"`

	// Double-tap gesture windows
	MinTapInterval   time.Duration `env:"MIN_TAP_INTERVAL"`
	DoubleTapTimeout time.Duration `env:"DOUBLE_TAP_TIMEOUT"`
}

// Defaults returns the baseline configuration, overridden by .env, the
// environment, and CLI flags.
func Defaults() *Config {
	return &Config{
		DebugMode:     false,
		OllamaBaseURL: "http://localhost:11434",
		OllamaTimeout: 10 * time.Second,
		Models: []string{
			"aya:8b",                // translation-specialized multilingual model
			"qwen2.5:3b",            // lightweight translation-optimized model
			"llama3.3:8b-instruct",  // high-quality general model
			"llama3.1:8b",           // proven general model
			"gemma3:3b",             // fast lightweight alternative
			"phi4-mini",             // ultra-lightweight fallback
		},
		HistoryDir:       "",
		DBPath:           "data/neural.db",
		MinTapInterval:   50 * time.Millisecond,
		DoubleTapTimeout: 300 * time.Millisecond,
	}
}

// New loads the application configuration.
func New() *Config {
	_ = godotenv.Load()

	cfg := Defaults()
	_ = env.Parse(cfg)

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "enable debug logging")
	flag.StringVar(&cfg.OllamaBaseURL, "ollama-base-url", cfg.OllamaBaseURL, "base URL of the local Ollama server")
	flag.DurationVar(&cfg.OllamaTimeout, "ollama-timeout", cfg.OllamaTimeout, "per-candidate request timeout, e.g. 10s")
	modelsFlag := strings.Join(cfg.Models, ";")
	flag.StringVar(&modelsFlag, "models", modelsFlag, "candidate models in preference order, separated by ';'")
	flag.StringVar(&cfg.HistoryDir, "history-dir", cfg.HistoryDir, "history directory (empty = per-OS default)")
	flag.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite cache database")
	flag.DurationVar(&cfg.MinTapInterval, "min-tap-interval", cfg.MinTapInterval, "minimum spacing between double-tap presses, e.g. 50ms")
	flag.DurationVar(&cfg.DoubleTapTimeout, "double-tap-timeout", cfg.DoubleTapTimeout, "maximum spacing between double-tap presses, e.g. 300ms")
	flag.Parse()

	cfg.Models = parseListFlag(modelsFlag, Defaults().Models)
	return cfg
}

// parseListFlag splits a ';'-separated list, trimming and dropping empties.
func parseListFlag(v string, def []string) []string {
	if v == "" {
		return def
	}
	parts := strings.Split(v, ";")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return def
	}
	return cleaned
}
