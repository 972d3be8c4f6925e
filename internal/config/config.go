// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

// Package config loads application configuration via Koanf v2 with
// layered sources (highest priority wins):
//
//  1. Environment variables (DATA_DIR, SERVER_PORT, LOG_LEVEL, ...)
//  2. Config file (config.yaml, or CONFIG_PATH override)
//  3. Built-in defaults
//
// The loaded struct is validated with go-playground/validator before use.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root application configuration.
type Config struct {
	// Data locates the MovieLens-style CSV tables.
	Data DataConfig `koanf:"data"`

	// Server configures the HTTP front end.
	Server ServerConfig `koanf:"server"`

	// API configures request handling limits.
	API APIConfig `koanf:"api"`

	// Recommend configures the recommendation engine.
	Recommend RecommendConfig `koanf:"recommend"`

	// Logging configures the zerolog output.
	Logging LoggingConfig `koanf:"logging"`
}

// DataConfig locates the raw catalog tables.
type DataConfig struct {
	// Dir is the directory containing the CSV files.
	Dir string `koanf:"dir" validate:"required"`

	// MoviesFile and RatingsFile are mandatory tables; the service
	// cannot start without them.
	MoviesFile  string `koanf:"movies_file" validate:"required"`
	RatingsFile string `koanf:"ratings_file" validate:"required"`

	// TagsFile and DetailsFile are optional tables; when missing or
	// unparseable the engine runs with content recommendations disabled.
	TagsFile    string `koanf:"tags_file"`
	DetailsFile string `koanf:"details_file"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// APIConfig configures request handling.
type APIConfig struct {
	// RateLimitReqs is the allowed number of requests per client IP
	// within RateLimitWindow.
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"gt=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"gt=0"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	// DefaultK is the number of recommendations returned when the
	// caller does not specify a count.
	DefaultK int `koanf:"default_k" validate:"gte=0"`

	// MaxK caps the number of recommendations per request.
	MaxK int `koanf:"max_k" validate:"gt=0"`

	// PopularK is the default length of the popular-titles listing.
	PopularK int `koanf:"popular_k" validate:"gt=0"`

	// BuildWorkers is the number of goroutines used to fill the
	// similarity matrices. Zero means runtime.NumCPU().
	BuildWorkers int `koanf:"build_workers" validate:"gte=0"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:         "ml-latest-small",
			MoviesFile:  "movies.csv",
			RatingsFile: "ratings.csv",
			TagsFile:    "tags.csv",
			DetailsFile: "dados.csv",
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		API: APIConfig{
			RateLimitReqs:   100,
			RateLimitWindow: 1 * time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Recommend: RecommendConfig{
			DefaultK:     10,
			MaxK:         100,
			PopularK:     20,
			BuildWorkers: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
