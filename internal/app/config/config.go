// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dovizkuru_backend/internal/platform/externalapi/evds"
	"dovizkuru_backend/internal/platform/externalapi/goldapi"
)

// DefaultPort はPORT未指定時の待ち受けポートです。
const DefaultPort = 3001

// Config は起動時に一度だけ読み込まれ、以降は変更されません。
type Config struct {
	EVDS    evds.Config
	GoldAPI goldapi.Config

	Port           int
	AllowedOrigins []string // 空または "*" を含む場合は全オリジン許可
	LogLevel       string
}

// Load は .env（存在する場合）と環境変数から設定を読み込みます。
// 既に設定されている環境変数は .env で上書きされません。
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv は現在の環境変数のみから設定を組み立てます。
func FromEnv() *Config {
	return &Config{
		EVDS:           evds.LoadConfig(),
		GoldAPI:        goldapi.LoadConfig(),
		Port:           envInt("PORT", DefaultPort),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:       envStr("LOG_LEVEL", "info"),
	}
}

// Validate は設定の問題をすべて集めて1つのエラーとして返します。
func (c *Config) Validate() error {
	var errs []string

	if c.EVDS.APIKey == "" {
		errs = append(errs, "EVDS_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			continue
		}
		if strings.Count(o, "*") > 1 {
			errs = append(errs, fmt.Sprintf("CORS_ALLOWED_ORIGINS entry %q may contain only one *", o))
			continue
		}
		if strings.Contains(o, "*") {
			continue
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			errs = append(errs, fmt.Sprintf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", o))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// AllowAllOrigins は全オリジンを許可する設定かどうかを返します。
func (c *Config) AllowAllOrigins() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Addr はhttp.Serverに渡す待ち受けアドレスです。
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// --- helpers ---

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
