package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr        = ":8080"
	defaultJWTTTL      = "24h"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultUploadsDir  = "./uploads"
	defaultStaticBase  = "/static/uploads"
	defaultTotalsCache = "60s"
)

type Config struct {
	AppEnv      string        `yaml:"app_env"`
	Addr        string        `yaml:"addr"`
	DatabaseURL string        `yaml:"database_url"`
	JWTSecret   string        `yaml:"jwt_secret"`
	JWTTTL      time.Duration `yaml:"-"`
	UploadsDir  string        `yaml:"uploads_dir"`
	StaticBase  string        `yaml:"static_base"`
	PublicURL   string        `yaml:"public_url"` // external base URL for object upload/download links

	RedisAddr      string        `yaml:"redis_addr"` // empty disables the totals cache
	TotalsCacheTTL time.Duration `yaml:"-"`

	JWTTTLRaw      string `yaml:"jwt_ttl"`
	TotalsCacheRaw string `yaml:"totals_cache_ttl"`
}

// Load reads config.yaml when present, then lets environment variables
// override every field. Missing file is fine: env-only setups are the
// default in deployment.
func Load() (*Config, error) {
	cfg := &Config{}

	if b, err := os.ReadFile(configPath()); err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config.yaml: %w", err)
		}
	}

	overrideString(&cfg.AppEnv, "APP_ENV")
	overrideString(&cfg.Addr, "ADDR")
	overrideString(&cfg.DatabaseURL, "DATABASE_URL")
	overrideString(&cfg.JWTSecret, "JWT_SECRET")
	overrideString(&cfg.UploadsDir, "UPLOADS_DIR")
	overrideString(&cfg.StaticBase, "STATIC_BASE")
	overrideString(&cfg.PublicURL, "PUBLIC_URL")
	overrideString(&cfg.RedisAddr, "REDIS_ADDR")
	overrideString(&cfg.JWTTTLRaw, "JWT_TTL")
	overrideString(&cfg.TotalsCacheRaw, "TOTALS_CACHE_TTL")

	if cfg.AppEnv == "" {
		cfg.AppEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(cfg.AppEnv)
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = defaultUploadsDir
	}
	if cfg.StaticBase == "" {
		cfg.StaticBase = defaultStaticBase
	}

	var err error
	cfg.JWTTTL, err = parseDuration(cfg.JWTTTLRaw, defaultJWTTTL, "JWT_TTL")
	if err != nil {
		return nil, err
	}
	cfg.TotalsCacheTTL, err = parseDuration(cfg.TotalsCacheRaw, defaultTotalsCache, "TOTALS_CACHE_TTL")
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	return cfg, nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func parseDuration(raw, def, name string) (time.Duration, error) {
	if raw == "" {
		raw = def
	}
	// Bare numbers are treated as seconds.
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}
