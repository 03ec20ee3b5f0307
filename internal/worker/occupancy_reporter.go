package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/cinema-room-service/internal/application"
	"github.com/sanosuguru/cinema-room-service/internal/pkg/logger"
	"github.com/sanosuguru/cinema-room-service/internal/pkg/metrics"
)

// StatsSource は統計スナップショットを提供するインターフェース
type StatsSource interface {
	Statistics(ctx context.Context) application.Stats
}

// OccupancyReporter は定期的に占有状況をメトリクスに反映するワーカー
type OccupancyReporter struct {
	source   StatsSource
	metrics  *metrics.Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewOccupancyReporter は新しいレポーターを作成
func NewOccupancyReporter(source StatsSource, m *metrics.Metrics, interval time.Duration) *OccupancyReporter {
	return &OccupancyReporter{
		source:   source,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はレポーターを開始
func (r *OccupancyReporter) Start(ctx context.Context) {
	logger.Info("占有状況レポーター開始", zap.Duration("interval", r.interval))

	// 起動直後に初期値を反映
	r.report(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("占有状況レポーター停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("占有状況レポーター停止（シグナル受信）")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

// Stop はレポーターを停止
func (r *OccupancyReporter) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// report は現在の統計をゲージに反映
func (r *OccupancyReporter) report(ctx context.Context) {
	stats := r.source.Statistics(ctx)

	r.metrics.AvailableSeats.Set(float64(stats.AvailableSeats))
	r.metrics.CurrentIncome.Set(float64(stats.CurrentIncome))

	logger.Debug("占有状況を更新",
		zap.Int("available_seats", stats.AvailableSeats),
		zap.Int("purchased_tickets", stats.PurchasedTickets),
		zap.Int("current_income", stats.CurrentIncome),
	)
}
