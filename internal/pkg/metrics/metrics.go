package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// チケット購入の総数（status: success, out_of_bounds, already_purchased）
	TicketPurchasesTotal *prometheus.CounterVec

	// チケット返却の総数（status: success, invalid_token）
	TicketReturnsTotal *prometheus.CounterVec

	// 現在の空席数
	AvailableSeats prometheus.Gauge

	// 現在の売上
	CurrentIncome prometheus.Gauge
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		TicketPurchasesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticket_purchases_total",
				Help: "Total number of ticket purchase attempts",
			},
			[]string{"status"},
		),
		TicketReturnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticket_returns_total",
				Help: "Total number of ticket return attempts",
			},
			[]string{"status"},
		),
		AvailableSeats: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "available_seats",
				Help: "Current number of available seats",
			},
		),
		CurrentIncome: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "current_income",
				Help: "Current income from purchased tickets",
			},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TicketPurchasesTotal,
		m.TicketReturnsTotal,
		m.AvailableSeats,
		m.CurrentIncome,
	)

	return m
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get はデフォルトのメトリクスインスタンスを返す
func Get() *Metrics {
	return defaultMetrics
}
