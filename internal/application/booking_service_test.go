package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
	"github.com/sanosuguru/cinema-room-service/internal/domain/ticket"
	"github.com/sanosuguru/cinema-room-service/internal/infrastructure/memory"
)

func newTestService(t *testing.T) *BookingService {
	t.Helper()
	layout, err := seat.NewLayout(9, 9, seat.StepPriceRule(4, 10, 8))
	require.NoError(t, err)
	return NewBookingService(memory.NewSeatInventory(layout), memory.NewTicketLedger())
}

func TestBookingService_ListInventory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inv := svc.ListInventory(ctx)

	assert.Equal(t, 9, inv.TotalRows)
	assert.Equal(t, 9, inv.TotalColumns)
	assert.Len(t, inv.AvailableSeats, 81)
}

func TestBookingService_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("購入可能な座席を購入できる", func(t *testing.T) {
		svc := newTestService(t)

		tk, err := svc.Purchase(ctx, 1, 1)

		require.NoError(t, err)
		assert.NotEmpty(t, tk.Token)
		assert.Equal(t, 1, tk.Seat.Row)
		assert.Equal(t, 1, tk.Seat.Column)
		assert.Equal(t, 10, tk.Seat.Price)

		stats := svc.Statistics(ctx)
		assert.Equal(t, 10, stats.CurrentIncome)
		assert.Equal(t, 80, stats.AvailableSeats)
		assert.Equal(t, 1, stats.PurchasedTickets)
	})

	t.Run("同じ座席の二重購入は失敗する", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Purchase(ctx, 2, 2)
		require.NoError(t, err)

		_, err = svc.Purchase(ctx, 2, 2)
		assert.ErrorIs(t, err, seat.ErrAlreadyPurchased)
	})

	t.Run("範囲外の座標は購入できない", func(t *testing.T) {
		svc := newTestService(t)

		for _, coord := range [][2]int{{0, 1}, {10, 1}, {1, 0}, {1, 10}} {
			_, err := svc.Purchase(ctx, coord[0], coord[1])
			assert.ErrorIs(t, err, seat.ErrOutOfBounds)
		}

		// 失敗した購入は状態を変えない
		stats := svc.Statistics(ctx)
		assert.Equal(t, 0, stats.CurrentIncome)
		assert.Equal(t, 81, stats.AvailableSeats)
	})
}

func TestBookingService_ReturnTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("購入したチケットを返却できる", func(t *testing.T) {
		svc := newTestService(t)

		tk, err := svc.Purchase(ctx, 1, 1)
		require.NoError(t, err)

		returned, err := svc.ReturnTicket(ctx, tk.Token)

		require.NoError(t, err)
		assert.Equal(t, 1, returned.Row)
		assert.Equal(t, 1, returned.Column)

		// 返却で購入前の状態に戻る
		stats := svc.Statistics(ctx)
		assert.Equal(t, 0, stats.CurrentIncome)
		assert.Equal(t, 81, stats.AvailableSeats)
		assert.Equal(t, 0, stats.PurchasedTickets)
	})

	t.Run("同じトークンの二重返却は失敗する", func(t *testing.T) {
		svc := newTestService(t)

		tk, err := svc.Purchase(ctx, 3, 3)
		require.NoError(t, err)

		_, err = svc.ReturnTicket(ctx, tk.Token)
		require.NoError(t, err)

		_, err = svc.ReturnTicket(ctx, tk.Token)
		assert.ErrorIs(t, err, ticket.ErrTicketNotFound)
	})

	t.Run("発行されていないトークンは返却できない", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.ReturnTicket(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ticket.ErrTicketNotFound)

		_, err = svc.ReturnTicket(ctx, "壊れたトークン")
		assert.ErrorIs(t, err, ticket.ErrTicketNotFound)
	})

	t.Run("返却後は同じ座席を再購入できる", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Purchase(ctx, 5, 5)
		require.NoError(t, err)

		_, err = svc.ReturnTicket(ctx, first.Token)
		require.NoError(t, err)

		second, err := svc.Purchase(ctx, 5, 5)
		require.NoError(t, err)

		// トークンは再利用されない
		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestBookingService_Statistics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stats := svc.Statistics(ctx)
	assert.Equal(t, 0, stats.CurrentIncome)
	assert.Equal(t, 81, stats.AvailableSeats)
	assert.Equal(t, 0, stats.PurchasedTickets)

	// 前方の座席は10、後方は8
	_, err := svc.Purchase(ctx, 4, 9)
	require.NoError(t, err)
	_, err = svc.Purchase(ctx, 5, 9)
	require.NoError(t, err)

	stats = svc.Statistics(ctx)
	assert.Equal(t, 18, stats.CurrentIncome)
	assert.Equal(t, 79, stats.AvailableSeats)
	assert.Equal(t, 2, stats.PurchasedTickets)

	// 空席数 + 購入済み数 == 総座席数
	assert.Equal(t, 81, stats.AvailableSeats+stats.PurchasedTickets)
}
