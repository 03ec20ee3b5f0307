package ticket

import "github.com/sanosuguru/cinema-room-service/internal/domain/seat"

// Ledger はトークンから購入済み座席への対応を保持するインターフェース
// 複数の呼び出し元からの並行な挿入・検索・削除に対して安全であること
type Ledger interface {
	// Issue は座席に対して新しいチケットを発行して登録する
	Issue(s *seat.Seat) *Ticket

	// Lookup はトークンに対応するチケットを返す
	// 存在しない場合は ErrTicketNotFound を返す
	Lookup(token string) (*Ticket, error)

	// Revoke はトークンに対応するチケットを原子的に削除して返す
	// 存在しない場合は ErrTicketNotFound を返す
	Revoke(token string) (*Ticket, error)

	// Count は有効なチケット数を返す
	Count() int
}
