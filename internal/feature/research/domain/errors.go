// Package domain はresearchフィーチャーのドメインレベルのエラーを定義します。
package domain

import "errors"

// リサーチパイプラインのエラー種別。
// 各エラーは1社分のパイプラインのみを中断し、バッチ全体は継続します。
var (
	// ErrSearchUnavailable は検索プロバイダへの到達失敗または不正な応答を示します。
	ErrSearchUnavailable = errors.New("search provider unavailable")

	// ErrLLMUnavailable は補完プロバイダのネットワーク障害またはプロバイダエラーを示します。
	ErrLLMUnavailable = errors.New("completion provider unavailable")

	// ErrLLMTimeout は設定された時間内に補完応答が得られなかったことを示します。
	ErrLLMTimeout = errors.New("completion request timed out")

	// ErrParseFailure は3フィールドのいずれも抽出できなかったことを示します。
	// 一部のフィールドのみ欠けている場合はエラーにならず、空フィールドとして埋め込まれます。
	ErrParseFailure = errors.New("no research fields could be parsed")

	// ErrInvalidCompanyName は企業名が入力規則を満たさないことを示します。
	ErrInvalidCompanyName = errors.New("invalid company name")
)
