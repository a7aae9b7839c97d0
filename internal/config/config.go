package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	Debug     bool
	KeepAlive bool
}

var config *Config

func GetConfig() *Config {
	if config != nil {
		return config
	}
	config = Load(defaultEnvFile)
	return config
}

// Load reads the configuration from the environment after applying envFile.
// A missing env file is not an error.
func Load(envFile string) *Config {
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no env file found, using system environment", "file", envFile)
		} else {
			slog.Warn("failed to load env file", "file", envFile, "error", err)
		}
	}

	conf := &Config{}

	// Debug mode
	conf.Debug = parseBool(os.Getenv("DEMO_DEBUG"), false)
	if conf.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Wait for a line of input once the demo is printed
	conf.KeepAlive = parseBool(os.Getenv("DEMO_KEEPALIVE"), true)

	slog.Debug("Configuration parameters",
		"DEMO_DEBUG", conf.Debug,
		"DEMO_KEEPALIVE", conf.KeepAlive)

	return conf
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}
