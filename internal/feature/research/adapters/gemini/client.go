package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/usecase"
)

// GeminiCompleter はGoogle Gemini APIを使用してプロンプトの補完を生成します。
type GeminiCompleter struct {
	client *genai.Client
	cfg    Config
}

// GeminiCompleterがCompleterを実装していることをコンパイル時に検証します。
var _ usecase.Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter は指定された設定でGeminiCompleterの新しいインスタンスを生成します。
// cfg.APIKeyが空の場合はエラーを返します（APIキーがないとパイプラインを完了できません）。
func NewGeminiCompleter(ctx context.Context, cfg Config) (*GeminiCompleter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, cfg: cfg}, nil
}

// Complete はプロンプトを補完エンドポイントに送信し、生テキストを返します。
//
// 設定されたタイムアウト内に応答がない場合はdomain.ErrLLMTimeoutを、
// それ以外のプロバイダエラーはdomain.ErrLLMUnavailableを返します。リトライはしません。
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: no response within %s", domain.ErrLLMTimeout, g.cfg.Timeout)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}

	return resp.Text(), nil
}
