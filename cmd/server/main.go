package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"research_backend/internal/app/di"
	"research_backend/internal/app/router"
	"research_backend/internal/feature/research/adapters/gemini"
	researchhandler "research_backend/internal/feature/research/transport/handler"
	researchusecase "research_backend/internal/feature/research/usecase"
	sessionusecase "research_backend/internal/feature/session/usecase"
	infraredis "research_backend/internal/platform/redis"
)

func main() {
	// .env（存在すれば）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	ctx := context.Background()

	// Redis（セッション保存用、無ければインメモリにフォールバック）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions will be kept in memory.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 外部サービスクライアント
	searchRepo := di.NewSearchRepository()
	completer, err := gemini.NewGeminiCompleter(ctx, gemini.LoadConfig())
	if err != nil {
		// APIキーが無いとパイプラインを1件も完了できない
		log.Fatal("failed to initialize completion client: ", err)
	}

	// Repository
	sessionRepo := di.NewSessionRepository(rdb)

	// Usecase
	researchUC := researchusecase.NewResearchUsecase(searchRepo, completer)
	sessionUC := sessionusecase.NewSessionUsecase(sessionRepo)

	// Handler
	researchH := researchhandler.NewResearchHandler(researchUC, sessionUC)

	// ルータ生成
	router := router.NewRouter(researchH)

	if os.Getenv("GOOGLE_SEARCH_API_KEY") == "" {
		log.Println("[WARN] GOOGLE_SEARCH_API_KEY is not set. Search requests will fail.")
	}

	addr := os.Getenv("HOST") + ":" + port()
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
