package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
)

// Config はアプリケーション設定を表す
type Config struct {
	Env    string
	Server ServerConfig
	Hall   HallConfig
	Stats  StatsConfig
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// HallConfig は上映室のグリッドと料金ルールの設定
type HallConfig struct {
	Rows       int
	Columns    int
	FrontRows  int
	FrontPrice int
	RearPrice  int
}

// StatsConfig は統計エンドポイントの認証設定
type StatsConfig struct {
	Password string
}

// Load は .env と環境変数から設定を読み込む
func Load() *Config {
	// .env が無い場合は環境変数のみを使う
	_ = godotenv.Load()

	return &Config{
		Env: getEnv("ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Hall: HallConfig{
			Rows:       getIntEnv("HALL_ROWS", 9),
			Columns:    getIntEnv("HALL_COLUMNS", 9),
			FrontRows:  getIntEnv("HALL_FRONT_ROWS", 4),
			FrontPrice: getIntEnv("HALL_FRONT_PRICE", 10),
			RearPrice:  getIntEnv("HALL_REAR_PRICE", 8),
		},
		Stats: StatsConfig{
			Password: getEnv("STATS_PASSWORD", "super_secret"),
		},
	}
}

// PriceRule は設定からレイアウト用の料金ルールを作る
func (c *HallConfig) PriceRule() seat.PriceRule {
	return seat.StepPriceRule(c.FrontRows, c.FrontPrice, c.RearPrice)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
