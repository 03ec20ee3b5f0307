package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/cinema-room-service/internal/api"
	"github.com/sanosuguru/cinema-room-service/internal/api/handler"
	"github.com/sanosuguru/cinema-room-service/internal/api/middleware"
	"github.com/sanosuguru/cinema-room-service/internal/application"
	"github.com/sanosuguru/cinema-room-service/internal/config"
	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
	"github.com/sanosuguru/cinema-room-service/internal/infrastructure/memory"
	"github.com/sanosuguru/cinema-room-service/internal/pkg/logger"
	"github.com/sanosuguru/cinema-room-service/internal/pkg/metrics"
	"github.com/sanosuguru/cinema-room-service/internal/worker"
)

func main() {
	// 設定読み込み
	cfg := config.Load()

	// ロガー初期化
	logger.Set(logger.NewLogger(cfg.Env))
	defer logger.Sync()

	// メトリクス初期化
	m := metrics.Init()

	// 座席レイアウトから予約エンジンを構築
	layout, err := seat.NewLayout(cfg.Hall.Rows, cfg.Hall.Columns, cfg.Hall.PriceRule())
	if err != nil {
		logger.Fatal("座席レイアウトの構築に失敗", zap.Error(err))
	}
	inventory := memory.NewSeatInventory(layout)
	ledger := memory.NewTicketLedger()
	bookingService := application.NewBookingService(inventory, ledger)

	// Echo インスタンス作成
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	e.Validator = api.NewValidator()

	// ミドルウェア設定
	middleware.SetupMiddleware(e)
	e.Use(middleware.PrometheusMiddleware(m))

	// ハンドラー登録
	bookingHandler := handler.NewBookingHandler(bookingService, m)
	statsHandler := handler.NewStatsHandler(bookingService, cfg.Stats.Password)
	healthHandler := handler.NewHealthHandler()

	e.GET("/seats", bookingHandler.ListSeats)
	e.POST("/purchase", bookingHandler.Purchase)
	e.POST("/return", bookingHandler.Return)
	e.POST("/stats", statsHandler.Statistics)
	e.GET("/api/v1/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth())

	// 占有状況レポーター起動
	reporterCtx, reporterCancel := context.WithCancel(context.Background())
	defer reporterCancel()

	reporter := worker.NewOccupancyReporter(bookingService, m, 15*time.Second)
	go reporter.Start(reporterCtx)

	// サーバー起動
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	logger.Info("サーバー起動",
		zap.String("port", cfg.Server.Port),
		zap.Int("rows", cfg.Hall.Rows),
		zap.Int("columns", cfg.Hall.Columns),
	)

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	reporter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
