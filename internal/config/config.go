package config

import (
	"os"
	"strconv"
)

// Defaults match the icon layout of the desktop app this tool ships with.
const (
	DefaultSourcePath = "src-tauri/icons/firestarter.png"
	DefaultDestPath   = "src-tauri/icons/firestarter-square.png"
	DefaultTargetSize = 1024
)

type Config struct {
	Icon  IconConfig
	Trace TraceConfig
}

type IconConfig struct {
	SourcePath string
	DestPath   string
	TargetSize int
}

type TraceConfig struct {
	Exporter     string
	OTLPEndpoint string
	OTLPInsecure bool
}

func Load() Config {
	return Config{
		Icon: IconConfig{
			SourcePath: env("SQUAREICON_SOURCE", DefaultSourcePath),
			DestPath:   env("SQUAREICON_DEST", DefaultDestPath),
			TargetSize: envInt("SQUAREICON_SIZE", DefaultTargetSize),
		},
		Trace: TraceConfig{
			Exporter:     env("SQUAREICON_TRACE_EXPORTER", "none"),
			OTLPEndpoint: env("SQUAREICON_OTLP_ENDPOINT", ""),
			OTLPInsecure: envBool("SQUAREICON_OTLP_INSECURE", false),
		},
	}
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
