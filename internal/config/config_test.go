package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s, want 24h", cfg.TokenTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "1h")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.JWTSecret != "secret" {
		t.Errorf("JWTSecret = %s, want secret", cfg.JWTSecret)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %s, want 1h", cfg.TokenTTL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:      "8080",
				DBPath:    "./data/settleup.db",
				JWTSecret: "secret",
				TokenTTL:  time.Hour,
				LogLevel:  "info",
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
