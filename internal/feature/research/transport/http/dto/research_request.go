// Package dto はresearchフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ResearchReq は/v1/researchエンドポイントのリクエストボディを表します。
type ResearchReq struct {
	CompanyName string `json:"company_name" binding:"required"`
}
