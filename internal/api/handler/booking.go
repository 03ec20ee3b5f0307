package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
	"github.com/sanosuguru/cinema-room-service/internal/domain/ticket"
	"github.com/sanosuguru/cinema-room-service/internal/pkg/metrics"
)

type BookingHandler struct {
	service BookingServiceInterface
	metrics *metrics.Metrics
}

// NewBookingHandler はBookingHandlerを作成する
// m はnil可（テストやメトリクス無効時）
func NewBookingHandler(s BookingServiceInterface, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{service: s, metrics: m}
}

type SeatResponse struct {
	Row    int `json:"row"`
	Column int `json:"column"`
	Price  int `json:"price"`
}

func toSeatResponse(s *seat.Seat) SeatResponse {
	return SeatResponse{Row: s.Row, Column: s.Column, Price: s.Price}
}

type InventoryResponse struct {
	TotalRows      int            `json:"total_rows"`
	TotalColumns   int            `json:"total_columns"`
	AvailableSeats []SeatResponse `json:"available_seats"`
}

type PurchaseRequest struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type PurchaseResponse struct {
	Token  string       `json:"token"`
	Ticket SeatResponse `json:"ticket"`
}

type ReturnRequest struct {
	Token string `json:"token" validate:"required"`
}

type ReturnResponse struct {
	ReturnedTicket SeatResponse `json:"returned_ticket"`
}

// ListSeats godoc
// @Summary 座席表を取得
// @Description グリッドの寸法と購入可能な座席の一覧を返します
// @Tags seats
// @Produce json
// @Success 200 {object} InventoryResponse
// @Router /seats [get]
func (h *BookingHandler) ListSeats(c echo.Context) error {
	inv := h.service.ListInventory(c.Request().Context())

	available := make([]SeatResponse, len(inv.AvailableSeats))
	for i, s := range inv.AvailableSeats {
		available[i] = toSeatResponse(s)
	}
	return c.JSON(http.StatusOK, InventoryResponse{
		TotalRows:      inv.TotalRows,
		TotalColumns:   inv.TotalColumns,
		AvailableSeats: available,
	})
}

// Purchase godoc
// @Summary チケットを購入
// @Description 指定座標の座席を購入してトークンを発行します
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "座席座標"
// @Success 201 {object} PurchaseResponse
// @Failure 400 {object} map[string]string "範囲外または購入済み"
// @Router /purchase [post]
func (h *BookingHandler) Purchase(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}

	tk, err := h.service.Purchase(c.Request().Context(), req.Row, req.Column)
	if err != nil {
		h.countPurchase(purchaseStatus(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.countPurchase("success")

	return c.JSON(http.StatusCreated, PurchaseResponse{
		Token:  tk.Token,
		Ticket: toSeatResponse(tk.Seat),
	})
}

// Return godoc
// @Summary チケットを返却
// @Description トークンに対応するチケットを返却し座席を解放します
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body ReturnRequest true "チケットのトークン"
// @Success 200 {object} ReturnResponse
// @Failure 400 {object} map[string]string "無効なトークン"
// @Router /return [post]
func (h *BookingHandler) Return(c echo.Context) error {
	var req ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.service.ReturnTicket(c.Request().Context(), req.Token)
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			h.countReturn("invalid_token")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.countReturn("success")

	return c.JSON(http.StatusOK, ReturnResponse{ReturnedTicket: toSeatResponse(s)})
}

func purchaseStatus(err error) string {
	switch {
	case errors.Is(err, seat.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, seat.ErrAlreadyPurchased):
		return "already_purchased"
	default:
		return "error"
	}
}

func (h *BookingHandler) countPurchase(status string) {
	if h.metrics != nil {
		h.metrics.TicketPurchasesTotal.WithLabelValues(status).Inc()
	}
}

func (h *BookingHandler) countReturn(status string) {
	if h.metrics != nil {
		h.metrics.TicketReturnsTotal.WithLabelValues(status).Inc()
	}
}
