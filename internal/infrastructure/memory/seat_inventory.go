// Package memory はプロセス内メモリ上のリポジトリ実装を提供する
// 永続化は行わず、状態はプロセスの生存期間のみ保持される
package memory

import (
	"sort"
	"sync"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
)

type coordinate struct {
	row    int
	column int
}

// SeatInventory は購入可能な座席の集合をメモリ上で管理する
// check-then-act が競合しないよう、全操作をミューテックスで保護する
type SeatInventory struct {
	mu        sync.RWMutex
	layout    *seat.Layout
	available map[coordinate]*seat.Seat
}

// NewSeatInventory はレイアウトから全座席を生成してインベントリを初期化する
func NewSeatInventory(layout *seat.Layout) *SeatInventory {
	available := make(map[coordinate]*seat.Seat, layout.TotalSeats())
	for _, s := range layout.Generate() {
		available[coordinate{row: s.Row, column: s.Column}] = s
	}
	return &SeatInventory{
		layout:    layout,
		available: available,
	}
}

// List は購入可能な座席を (row, column) 順で返す
func (i *SeatInventory) List() []*seat.Seat {
	i.mu.RLock()
	defer i.mu.RUnlock()

	seats := make([]*seat.Seat, 0, len(i.available))
	for _, s := range i.available {
		seats = append(seats, s)
	}
	sort.Slice(seats, func(a, b int) bool {
		if seats[a].Row != seats[b].Row {
			return seats[a].Row < seats[b].Row
		}
		return seats[a].Column < seats[b].Column
	})
	return seats
}

// Claim は指定座標の座席を原子的に取り除いて返す
// 範囲チェックを先に行い、その後で購入可能性を確認する
func (i *SeatInventory) Claim(row, column int) (*seat.Seat, error) {
	if !i.layout.Contains(row, column) {
		return nil, seat.ErrOutOfBounds
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	key := coordinate{row: row, column: column}
	s, ok := i.available[key]
	if !ok {
		return nil, seat.ErrAlreadyPurchased
	}
	if err := s.Claim(); err != nil {
		return nil, err
	}
	delete(i.available, key)
	return s, nil
}

// Release は座席を購入可能集合へ戻す
func (i *SeatInventory) Release(s *seat.Seat) {
	i.mu.Lock()
	defer i.mu.Unlock()

	s.Release()
	i.available[coordinate{row: s.Row, column: s.Column}] = s
}

// CountAvailable は購入可能な座席数を返す
func (i *SeatInventory) CountAvailable() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.available)
}

// Rows はグリッドの行数を返す
func (i *SeatInventory) Rows() int {
	return i.layout.Rows
}

// Columns はグリッドの列数を返す
func (i *SeatInventory) Columns() int {
	return i.layout.Columns
}
