// Package usecase はresearchフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
)

const (
	// MaxCompanyNameLength は企業名の最大文字数（rune数）です。
	MaxCompanyNameLength = 100
	// DefaultMaxSearchResults は1クエリあたりの検索結果の最大取得件数です。
	DefaultMaxSearchResults = 3
)

// validCompanyName は企業名に許可される文字パターンです（英数字・日本語・スペース・中黒など）。
var validCompanyName = regexp.MustCompile(`^[\p{L}\p{N}\s・\-\.&,']+$`)

// SearchRepository は検索プロバイダのリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SearchRepository interface {
	// Search はクエリに対する検索結果をプロバイダの順位順で最大maxResults件返します。
	Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error)
}

// Completer はLLM補完プロバイダのリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Completer interface {
	// Complete はプロンプトを補完エンドポイントに送信し、生テキストを返します。
	Complete(ctx context.Context, prompt string) (string, error)
}

// researchUsecase は企業リサーチパイプラインのオーケストレーションを提供します。
// 1社につき 検索 → プロンプト生成 → 補完 → 解析 を順番に実行します。
type researchUsecase struct {
	search     SearchRepository
	completer  Completer
	maxResults int
}

// NewResearchUsecase はresearchUsecaseの新しいインスタンスを生成します。
func NewResearchUsecase(sr SearchRepository, c Completer) *researchUsecase {
	return &researchUsecase{search: sr, completer: c, maxResults: DefaultMaxSearchResults}
}

// fieldQueries は1社に対して発行する観点別の検索クエリを返します。
// プロフィール・セクター・将来目標の3観点で検索し、結果をまとめてLLMに渡します。
func fieldQueries(companyName string) []string {
	return []string{
		companyName + " company profile about",
		companyName + " industry sector business",
		companyName + " 2025 objectives goals future plans",
	}
}

// Research は1社分のリサーチパイプラインを実行してCompanyRecordを返します。
//
// いずれかのステップが失敗した場合はその企業のパイプラインを中断し、
// エラー種別（domain.Err*）をそのまま呼び出し元に返します。リトライはしません。
func (u *researchUsecase) Research(ctx context.Context, companyName string) (*entity.CompanyRecord, error) {
	companyName = strings.TrimSpace(companyName)
	if err := validateCompanyName(companyName); err != nil {
		return nil, err
	}

	// Searching: 観点別クエリの結果をマージ
	var results []entity.SearchResult
	for _, q := range fieldQueries(companyName) {
		rs, err := u.search.Search(ctx, q, u.maxResults)
		if err != nil {
			return nil, fmt.Errorf("search for %q: %w", companyName, err)
		}
		results = append(results, rs...)
	}

	// Prompting
	prompt := BuildPrompt(companyName, results)

	// Completing
	rawText, err := u.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion for %q: %w", companyName, err)
	}

	// Parsing
	record, err := ParseRecord(companyName, rawText)
	if err != nil {
		return nil, err
	}
	record.Stage = entity.StageDone
	return record, nil
}

// ResearchBatch は複数の企業を入力順に1社ずつ逐次処理し、ResultTableを返します。
//
// 失敗した行もテーブル上の位置を保持し、空フィールドとエラー種別を記録した
// レコードになります。戻り値の行数は常に入力行数と一致します。
func (u *researchUsecase) ResearchBatch(ctx context.Context, names []string) entity.ResultTable {
	table := make(entity.ResultTable, 0, len(names))
	for _, name := range names {
		record, err := u.Research(ctx, name)
		if err != nil {
			slog.Warn("リサーチに失敗", "company", name, "kind", ErrorKind(err), "error", err)
			table = append(table, failedRecord(name, err))
			continue
		}
		table = append(table, *record)
	}
	return table
}

// validateCompanyName は企業名の入力規則を検証します。
func validateCompanyName(companyName string) error {
	if companyName == "" {
		return fmt.Errorf("%w: company name is required", domain.ErrInvalidCompanyName)
	}
	if utf8.RuneCountInString(companyName) > MaxCompanyNameLength {
		return fmt.Errorf("%w: company name exceeds maximum length of %d characters", domain.ErrInvalidCompanyName, MaxCompanyNameLength)
	}
	if !validCompanyName.MatchString(companyName) {
		return fmt.Errorf("%w: company name contains invalid characters", domain.ErrInvalidCompanyName)
	}
	return nil
}

// failedRecord は失敗した企業のプレースホルダーレコードを生成します。
func failedRecord(companyName string, err error) entity.CompanyRecord {
	return entity.CompanyRecord{
		CompanyName: strings.TrimSpace(companyName),
		Stage:       entity.StageFailed,
		FailedStage: FailedStage(err),
		ErrorKind:   ErrorKind(err),
	}
}

// ErrorKind はパイプラインエラーを安定した種別文字列に対応付けます。
// プロバイダのエラーペイロードは含めません。
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCompanyName):
		return "invalid_company_name"
	case errors.Is(err, domain.ErrSearchUnavailable):
		return "search_unavailable"
	case errors.Is(err, domain.ErrLLMTimeout):
		return "completion_timeout"
	case errors.Is(err, domain.ErrLLMUnavailable):
		return "completion_unavailable"
	case errors.Is(err, domain.ErrParseFailure):
		return "parse_failure"
	default:
		return "unknown"
	}
}

// FailedStage はパイプラインエラーを失敗したステージに対応付けます。
func FailedStage(err error) entity.Stage {
	switch {
	case errors.Is(err, domain.ErrInvalidCompanyName):
		return entity.StageIdle
	case errors.Is(err, domain.ErrSearchUnavailable):
		return entity.StageSearching
	case errors.Is(err, domain.ErrLLMTimeout), errors.Is(err, domain.ErrLLMUnavailable):
		return entity.StageCompleting
	case errors.Is(err, domain.ErrParseFailure):
		return entity.StageParsing
	default:
		return entity.StageIdle
	}
}
