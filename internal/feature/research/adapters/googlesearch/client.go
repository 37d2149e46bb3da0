package googlesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"research_backend/internal/feature/research/adapters/googlesearch/dto"
	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/research/usecase"
)

// GoogleSearch はGoogle Custom Search JSON APIから検索結果を取得する
// SearchRepository実装です。
type GoogleSearch struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// GoogleSearchがSearchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SearchRepository = (*GoogleSearch)(nil)

// NewGoogleSearch は指定された設定とHTTPクライアントでGoogleSearchの新しいインスタンスを生成します。
// cfg.Intervalが正の場合、その間隔でリクエストをペーシングします（プロバイダのレート制限対策）。
func NewGoogleSearch(cfg Config, client *http.Client) *GoogleSearch {
	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}
	return &GoogleSearch{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Search はクエリに対する検索結果をプロバイダの順位順で最大maxResults件返します。
// プロバイダに到達できない場合や応答が不正な場合はdomain.ErrSearchUnavailableを返します。
// 内部でのリトライはしません。
func (g *GoogleSearch) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	if maxResults < 1 {
		return nil, fmt.Errorf("maxResults must be at least 1, got %d", maxResults)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("key", g.cfg.APIKey)
	q.Set("cx", g.cfg.EngineID)
	q.Set("q", query)
	q.Set("num", strconv.Itoa(maxResults))

	u := fmt.Sprintf("%s?%s", g.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: http %d", domain.ErrSearchUnavailable, res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrSearchUnavailable, err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("%w: api error %d", domain.ErrSearchUnavailable, body.Error.Code)
	}

	results := make([]entity.SearchResult, 0, len(body.Items))
	for _, item := range body.Items {
		if len(results) >= maxResults {
			break
		}
		// ドメインエンティティに変換
		results = append(results, entity.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
		})
	}
	return results, nil
}
