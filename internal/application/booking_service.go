package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
	"github.com/sanosuguru/cinema-room-service/internal/domain/ticket"
	"github.com/sanosuguru/cinema-room-service/internal/pkg/logger"
)

// BookingService は購入・返却・統計の3操作を提供する予約エンジン
//
// 座席の状態遷移と売上の更新が他の操作から単一の原子的ステップとして
// 観測されるよう、インベントリ・台帳・売上カウンターへのアクセスを
// エンジン全体で1つのミューテックスで直列化する
type BookingService struct {
	mu        sync.RWMutex
	inventory seat.Inventory
	ledger    ticket.Ledger
	income    int
}

func NewBookingService(inventory seat.Inventory, ledger ticket.Ledger) *BookingService {
	return &BookingService{
		inventory: inventory,
		ledger:    ledger,
	}
}

// Stats は統計スナップショット
// 3つの値は同一時点の状態を反映する
type Stats struct {
	CurrentIncome    int
	AvailableSeats   int
	PurchasedTickets int
}

// Inventory は座席表の読み取り専用ビュー
type Inventory struct {
	TotalRows      int
	TotalColumns   int
	AvailableSeats []*seat.Seat
}

// ListInventory はグリッドの寸法と現在購入可能な座席の一覧を返す
func (s *BookingService) ListInventory(ctx context.Context) Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Inventory{
		TotalRows:      s.inventory.Rows(),
		TotalColumns:   s.inventory.Columns(),
		AvailableSeats: s.inventory.List(),
	}
}

// Purchase は指定座標の座席を購入し、トークン付きチケットを発行する
// 座標が範囲外なら seat.ErrOutOfBounds、購入済みなら seat.ErrAlreadyPurchased を返す
func (s *BookingService) Purchase(ctx context.Context, row, column int) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	se, err := s.inventory.Claim(row, column)
	if err != nil {
		return nil, err
	}

	tk := s.ledger.Issue(se)
	s.income += se.Price

	logger.Info("チケットを購入",
		zap.Int("row", se.Row),
		zap.Int("column", se.Column),
		zap.Int("price", se.Price),
		zap.Int("income", s.income),
	)
	return tk, nil
}

// ReturnTicket はトークンに対応するチケットを返却し、座席を購入可能に戻す
// トークンが無効なら ticket.ErrTicketNotFound を返す
func (s *BookingService) ReturnTicket(ctx context.Context, token string) (*seat.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tk, err := s.ledger.Revoke(token)
	if err != nil {
		return nil, err
	}

	s.inventory.Release(tk.Seat)
	s.income -= tk.Seat.Price

	logger.Info("チケットを返却",
		zap.Int("row", tk.Seat.Row),
		zap.Int("column", tk.Seat.Column),
		zap.Int("price", tk.Seat.Price),
		zap.Int("income", s.income),
	)
	return tk.Seat, nil
}

// Statistics は売上・空席数・購入済み数を単一スナップショットとして返す
func (s *BookingService) Statistics(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		CurrentIncome:    s.income,
		AvailableSeats:   s.inventory.CountAvailable(),
		PurchasedTickets: s.ledger.Count(),
	}
}
