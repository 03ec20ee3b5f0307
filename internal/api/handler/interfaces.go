package handler

import (
	"context"

	"github.com/sanosuguru/cinema-room-service/internal/application"
	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
	"github.com/sanosuguru/cinema-room-service/internal/domain/ticket"
)

// BookingServiceInterface は予約エンジンのインターフェース
type BookingServiceInterface interface {
	ListInventory(ctx context.Context) application.Inventory
	Purchase(ctx context.Context, row, column int) (*ticket.Ticket, error)
	ReturnTicket(ctx context.Context, token string) (*seat.Seat, error)
	Statistics(ctx context.Context) application.Stats
}
