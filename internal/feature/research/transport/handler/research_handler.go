// Package handler はresearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/research/transport/csvio"
	"research_backend/internal/feature/research/transport/http/dto"
	sessionentity "research_backend/internal/feature/session/domain/entity"
	sessionusecase "research_backend/internal/feature/session/usecase"
)

// ResearchUsecase は企業リサーチのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ResearchUsecase interface {
	Research(ctx context.Context, companyName string) (*entity.CompanyRecord, error)
	ResearchBatch(ctx context.Context, names []string) entity.ResultTable
}

// SessionUsecase はリサーチセッションのユースケースインターフェースを定義します。
type SessionUsecase interface {
	SaveResults(ctx context.Context, results entity.ResultTable) (*sessionentity.ResearchSession, error)
	Results(ctx context.Context, id string) (entity.ResultTable, error)
}

// ResearchHandler は企業リサーチのHTTPリクエストを処理します。
type ResearchHandler struct {
	research ResearchUsecase
	sessions SessionUsecase
}

// NewResearchHandler はResearchHandlerの新しいインスタンスを生成します。
func NewResearchHandler(ru ResearchUsecase, su SessionUsecase) *ResearchHandler {
	return &ResearchHandler{research: ru, sessions: su}
}

// Research は1社分のリサーチを実行して結果を返します。
//
// エンドポイント: POST /v1/research
// Content-Type: application/json
func (h *ResearchHandler) Research(c *gin.Context) {
	var req dto.ResearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("リサーチリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "企業名が必要です"})
		return
	}

	record, err := h.research.Research(c.Request.Context(), req.CompanyName)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCompanyName) {
			slog.Warn("企業名が不正", "company", req.CompanyName)
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "企業名が不正です"})
			return
		}
		// プロバイダのエラーペイロードは返さず、失敗したステージのみを伝える
		slog.Error("リサーチに失敗", "error", err, "company", req.CompanyName)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: stageMessage(err)})
		return
	}

	c.JSON(http.StatusOK, dto.NewCompanyRecordResponse(*record))
}

// ResearchBatch はCSVをアップロードして複数の企業を一括リサーチします。
// 結果テーブルはセッションとして保存され、レスポンスのsession_idで
// エクスポートエンドポイントから参照できます。
//
// エンドポイント: POST /v1/research/batch
// Content-Type: multipart/form-data
// フィールド: file（company_name列を含むCSVファイル）
func (h *ResearchHandler) ResearchBatch(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		slog.Warn("CSVファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "CSVファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("CSVファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "CSVの読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("CSVファイルのクローズに失敗", "error", err)
		}
	}()

	names, err := csvio.ReadCompanyNames(f)
	if err != nil {
		slog.Warn("CSVの解析に失敗", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "CSVにcompany_name列が必要です"})
		return
	}
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "CSVに企業名がありません"})
		return
	}

	table := h.research.ResearchBatch(c.Request.Context(), names)

	session, err := h.sessions.SaveResults(c.Request.Context(), table)
	if err != nil {
		slog.Error("セッションの保存に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "結果の保存に失敗しました"})
		return
	}

	out := make([]dto.CompanyRecordResponse, 0, len(table))
	for _, record := range table {
		out = append(out, dto.NewCompanyRecordResponse(record))
	}
	c.JSON(http.StatusOK, dto.BatchResearchResponse{
		SessionID: session.ID,
		Results:   out,
	})
}

// Export はセッションに保存された結果テーブルをCSVとしてダウンロードします。
//
// エンドポイント: GET /v1/research/export/:sessionID
func (h *ResearchHandler) Export(c *gin.Context) {
	sessionID := c.Param("sessionID")

	table, err := h.sessions.Results(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessionusecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "セッションが見つかりません"})
			return
		}
		slog.Error("セッションの取得に失敗", "error", err, "session_id", sessionID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "結果の取得に失敗しました"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="research_results.csv"`)
	c.Status(http.StatusOK)

	if err := csvio.WriteResultTable(c.Writer, table); err != nil {
		slog.Error("CSVの書き出しに失敗", "error", err, "session_id", sessionID)
	}
}

// stageMessage は失敗したステージのみを伝えるユーザー向けメッセージを返します。
func stageMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSearchUnavailable):
		return "検索に失敗しました"
	case errors.Is(err, domain.ErrLLMTimeout):
		return "補完がタイムアウトしました"
	case errors.Is(err, domain.ErrLLMUnavailable):
		return "補完に失敗しました"
	case errors.Is(err, domain.ErrParseFailure):
		return "応答の解析に失敗しました"
	default:
		return "リサーチに失敗しました"
	}
}
