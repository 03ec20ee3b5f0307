package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
)

func newTestLayout(t *testing.T) *seat.Layout {
	t.Helper()
	layout, err := seat.NewLayout(9, 9, seat.StepPriceRule(4, 10, 8))
	require.NoError(t, err)
	return layout
}

func TestSeatInventory_List(t *testing.T) {
	inv := NewSeatInventory(newTestLayout(t))

	seats := inv.List()

	require.Len(t, seats, 81)
	assert.Equal(t, 81, inv.CountAvailable())
	assert.Equal(t, 9, inv.Rows())
	assert.Equal(t, 9, inv.Columns())

	// (row, column) 順で列挙される
	assert.Equal(t, 1, seats[0].Row)
	assert.Equal(t, 1, seats[0].Column)
	assert.Equal(t, 1, seats[1].Row)
	assert.Equal(t, 2, seats[1].Column)
	assert.Equal(t, 9, seats[80].Row)
	assert.Equal(t, 9, seats[80].Column)
}

func TestSeatInventory_Claim(t *testing.T) {
	t.Run("購入可能な座席を取得できる", func(t *testing.T) {
		inv := NewSeatInventory(newTestLayout(t))

		s, err := inv.Claim(1, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, s.Row)
		assert.Equal(t, 1, s.Column)
		assert.Equal(t, 10, s.Price)
		assert.Equal(t, 80, inv.CountAvailable())
	})

	t.Run("同じ座標の二重取得は失敗する", func(t *testing.T) {
		inv := NewSeatInventory(newTestLayout(t))

		_, err := inv.Claim(5, 5)
		require.NoError(t, err)

		_, err = inv.Claim(5, 5)
		assert.ErrorIs(t, err, seat.ErrAlreadyPurchased)
	})

	t.Run("範囲外の座標は在庫状態に関わらず失敗する", func(t *testing.T) {
		inv := NewSeatInventory(newTestLayout(t))

		tests := []struct {
			name     string
			row, col int
		}{
			{"行が0", 0, 1},
			{"行が範囲超過", 10, 1},
			{"列が0", 1, 0},
			{"列が範囲超過", 1, 10},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := inv.Claim(tt.row, tt.col)
				assert.ErrorIs(t, err, seat.ErrOutOfBounds)
			})
		}
	})
}

func TestSeatInventory_Release(t *testing.T) {
	inv := NewSeatInventory(newTestLayout(t))

	s, err := inv.Claim(3, 3)
	require.NoError(t, err)
	require.Equal(t, 80, inv.CountAvailable())

	inv.Release(s)

	assert.Equal(t, 81, inv.CountAvailable())

	// 返却後は同じ座標を再取得できる
	again, err := inv.Claim(3, 3)
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestSeatInventory_ConcurrentClaim(t *testing.T) {
	inv := NewSeatInventory(newTestLayout(t))

	const goroutines = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	var successCount, conflictCount int

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := inv.Claim(7, 7)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successCount++
			} else if assert.ErrorIs(t, err, seat.ErrAlreadyPurchased) {
				conflictCount++
			}
		}()
	}
	wg.Wait()

	// 同一座標への並行取得は必ず1件だけ成功する
	assert.Equal(t, 1, successCount)
	assert.Equal(t, goroutines-1, conflictCount)
	assert.Equal(t, 80, inv.CountAvailable())
}
