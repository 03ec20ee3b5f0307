package seat

// Seat は上映室の座席エンティティを表す
// 識別子は (Row, Column) の組で、生成後は claimed フラグ以外不変
type Seat struct {
	Row     int
	Column  int
	Price   int
	claimed bool
}

// NewSeat は新しい座席を作成する
func NewSeat(row, column, price int) *Seat {
	return &Seat{
		Row:    row,
		Column: column,
		Price:  price,
	}
}

// IsAvailable は座席が購入可能かを返す
func (s *Seat) IsAvailable() bool {
	return !s.claimed
}

// Claim は座席を購入済み状態にする
func (s *Seat) Claim() error {
	if s.claimed {
		return ErrAlreadyPurchased
	}
	s.claimed = true
	return nil
}

// Release は座席を購入可能状態に戻す
func (s *Seat) Release() {
	s.claimed = false
}
