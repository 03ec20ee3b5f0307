package ticket

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanosuguru/cinema-room-service/internal/domain/seat"
)

// Ticket は購入済み座席とトークンの組を表す
// Seat はインベントリが追跡しているのと同一のオブジェクトを指す（コピーではない）
type Ticket struct {
	Token    string
	Seat     *seat.Seat
	IssuedAt time.Time
}

// NewTicket は座席に対して新しいトークン付きチケットを発行する
// トークンはUUIDv4で、プロセスの生存期間を通じて一意
func NewTicket(s *seat.Seat) *Ticket {
	return &Ticket{
		Token:    uuid.New().String(),
		Seat:     s,
		IssuedAt: time.Now(),
	}
}
