package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrSubdivision is returned for a grid subdivision that is not a positive number.
var ErrSubdivision = errors.New("grid subdivision must be a positive number")

type Config struct {
	Subdivision float64
	DBPath      string
	LogPath     string
	ExportPath  string
	Fill        string
	Stroke      string
	ShowGrid    bool
}

// Load reads the configuration from GRIDSKETCH_* environment variables and
// validates it.
func Load() (*Config, error) {
	sub, err := getEnvAsFloat("GRIDSKETCH_SUBDIVISION", 4)
	if err != nil {
		return nil, err
	}
	grid, err := getEnvAsBool("GRIDSKETCH_GRID", true)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Subdivision: sub,
		DBPath:      getEnv("GRIDSKETCH_DB", "data/gridsketch.db"),
		LogPath:     getEnv("GRIDSKETCH_LOG", ""),
		ExportPath:  getEnv("GRIDSKETCH_EXPORT", "shapes.geojson"),
		Fill:        getEnv("GRIDSKETCH_FILL", "none"),
		Stroke:      getEnv("GRIDSKETCH_STROKE", "black"),
		ShowGrid:    grid,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !(c.Subdivision > 0) {
		return fmt.Errorf("%w: got %v", ErrSubdivision, c.Subdivision)
	}
	if c.DBPath == "" {
		return errors.New("database path is empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
