package dto

import "research_backend/internal/feature/research/domain/entity"

// FieldResultResponse は1フィールド分の抽出結果のレスポンス表現です。
type FieldResultResponse struct {
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
	Source     string `json:"source"`
}

// CompanyRecordResponse は1社分のリサーチ結果のレスポンス表現です。
type CompanyRecordResponse struct {
	CompanyName string              `json:"company_name"`
	Profile     FieldResultResponse `json:"profile"`
	Sector      FieldResultResponse `json:"sector"`
	Objectives  FieldResultResponse `json:"objectives"`
	Stage       string              `json:"stage"`
	FailedStage string              `json:"failed_stage,omitempty"`
	ErrorKind   string              `json:"error_kind,omitempty"`
}

// BatchResearchResponse は/v1/research/batchのレスポンスボディを表します。
// SessionIDはエクスポートエンドポイントで結果テーブルを参照するために使います。
type BatchResearchResponse struct {
	SessionID string                  `json:"session_id"`
	Results   []CompanyRecordResponse `json:"results"`
}

// ErrorResponse はエラーレスポンスの共通表現です。
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewCompanyRecordResponse はドメインエンティティをレスポンス表現に変換します。
func NewCompanyRecordResponse(r entity.CompanyRecord) CompanyRecordResponse {
	return CompanyRecordResponse{
		CompanyName: r.CompanyName,
		Profile:     newFieldResultResponse(r.Profile),
		Sector:      newFieldResultResponse(r.Sector),
		Objectives:  newFieldResultResponse(r.Objectives),
		Stage:       string(r.Stage),
		FailedStage: string(r.FailedStage),
		ErrorKind:   r.ErrorKind,
	}
}

func newFieldResultResponse(f entity.FieldResult) FieldResultResponse {
	return FieldResultResponse{
		Value:      f.Value,
		Confidence: f.Confidence,
		Source:     f.Source,
	}
}
