// Package entity はresearchフィーチャーのドメインモデルを定義します。
package entity

// SearchResult は検索プロバイダから返される1件の検索結果を表します。
type SearchResult struct {
	Title   string // 検索結果のタイトル
	Snippet string // 本文の抜粋
	URL     string // 検索結果のURL
}

// FieldResult はLLM出力から抽出された1フィールド分の結果を表します。
type FieldResult struct {
	Value      string // 抽出されたテキスト（抽出失敗時は空文字）
	Confidence int    // 信頼度スコア（0〜100）
	Source     string // 根拠となるURL（不明な場合は空文字）
}

// Stage は1社分のリサーチパイプラインの進行状態を表します。
type Stage string

const (
	StageIdle       Stage = "idle"
	StageSearching  Stage = "searching"
	StagePrompting  Stage = "prompting"
	StageCompleting Stage = "completing"
	StageParsing    Stage = "parsing"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// CompanyRecord は1社分のリサーチ結果を表します。
// パイプライン完了時に一度だけ構築され、以降は変更されません。
type CompanyRecord struct {
	CompanyName string
	Profile     FieldResult // 企業プロフィール
	Sector      FieldResult // 業界セクター
	Objectives  FieldResult // 戦略目標
	Stage       Stage       // 最終状態（done または failed）
	FailedStage Stage       // 失敗したステージ（成功時は空）
	ErrorKind   string      // 失敗時のエラー種別（成功時は空）
}

// ResultTable は入力行順を保ったCompanyRecordの列です。
// バッチ処理では入力N行に対して必ずN行になります。
type ResultTable []CompanyRecord
