// Package gemini はGoogle Gemini APIを使用したLLM補完クライアントを提供します。
package gemini

import (
	"os"
	"time"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeout は補完リクエストのデフォルトタイムアウトです。
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Gemini completion client.
type Config struct {
	APIKey  string        // GEMINI_API_KEY（未設定の場合、補完リクエストは認可されません）
	Model   string        // 使用するモデル名
	Timeout time.Duration // 1補完リクエストの上限時間
}

// LoadConfig loads Gemini configuration from environment variables.
func LoadConfig() Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	timeout := DefaultTimeout
	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}
	return Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   model,
		Timeout: timeout,
	}
}
