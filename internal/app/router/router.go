package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	researchhandler "research_backend/internal/feature/research/transport/handler"
	"research_backend/internal/platform/http/handler"
)

func NewRouter(research *researchhandler.ResearchHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザUIからAPIを呼ぶためCORSを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 最小限のUI（単体リサーチ・CSVアップロード・エクスポート）
	r.StaticFile("/", "./web/index.html")

	v1 := r.Group("/v1")
	{
		// 1社分のリサーチ
		v1.POST("/research", research.Research)
		// CSVアップロードによる一括リサーチ
		v1.POST("/research/batch", research.ResearchBatch)
		// セッションに保存された結果テーブルのCSVエクスポート
		v1.GET("/research/export/:sessionID", research.Export)
	}

	return r
}
