package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatsHandler は統計エンドポイントのハンドラー
type StatsHandler struct {
	service  BookingServiceInterface
	password string
}

// NewStatsHandler はStatsHandlerを作成する
func NewStatsHandler(s BookingServiceInterface, password string) *StatsHandler {
	return &StatsHandler{service: s, password: password}
}

type StatsResponse struct {
	CurrentIncome            int `json:"current_income"`
	NumberOfAvailableSeats   int `json:"number_of_available_seats"`
	NumberOfPurchasedTickets int `json:"number_of_purchased_tickets"`
}

// Statistics godoc
// @Summary 統計を取得
// @Description 売上・空席数・購入済み数の一貫したスナップショットを返します
// @Tags stats
// @Produce json
// @Param password query string true "統計パスワード"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "パスワードが無いか不正"
// @Router /stats [post]
func (h *StatsHandler) Statistics(c echo.Context) error {
	password := c.QueryParam("password")
	if password == "" {
		password = c.FormValue("password")
	}

	// タイミング攻撃を防ぐため ConstantTimeCompare を使用
	if subtle.ConstantTimeCompare([]byte(password), []byte(h.password)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "パスワードが正しくありません")
	}

	stats := h.service.Statistics(c.Request().Context())
	return c.JSON(http.StatusOK, StatsResponse{
		CurrentIncome:            stats.CurrentIncome,
		NumberOfAvailableSeats:   stats.AvailableSeats,
		NumberOfPurchasedTickets: stats.PurchasedTickets,
	})
}
