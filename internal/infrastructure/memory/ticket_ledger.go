package memory

import (
	"sync"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
	"github.com/sanosuguru/cinema-room-service/internal/domain/ticket"
)

// TicketLedger はトークンから購入済みチケットへの対応をメモリ上で管理する
type TicketLedger struct {
	mu      sync.RWMutex
	tickets map[string]*ticket.Ticket
}

// NewTicketLedger は空の台帳を作成する
func NewTicketLedger() *TicketLedger {
	return &TicketLedger{
		tickets: make(map[string]*ticket.Ticket),
	}
}

// Issue は座席に対して新しいチケットを発行して登録する
func (l *TicketLedger) Issue(s *seat.Seat) *ticket.Ticket {
	tk := ticket.NewTicket(s)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.tickets[tk.Token] = tk
	return tk
}

// Lookup はトークンに対応するチケットを返す
func (l *TicketLedger) Lookup(token string) (*ticket.Ticket, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tk, ok := l.tickets[token]
	if !ok {
		return nil, ticket.ErrTicketNotFound
	}
	return tk, nil
}

// Revoke はトークンに対応するチケットを原子的に削除して返す
func (l *TicketLedger) Revoke(token string) (*ticket.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tk, ok := l.tickets[token]
	if !ok {
		return nil, ticket.ErrTicketNotFound
	}
	delete(l.tickets, token)
	return tk, nil
}

// Count は有効なチケット数を返す
func (l *TicketLedger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tickets)
}
