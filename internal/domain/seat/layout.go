package seat

// PriceRule は行番号から座席料金を導出する関数
type PriceRule func(row int) int

// Layout は上映室の固定グリッド定義
// 起動時に一度だけ評価され、以降は変更されない
type Layout struct {
	Rows      int
	Columns   int
	PriceRule PriceRule
}

// NewLayout は新しいレイアウトを作成する
func NewLayout(rows, columns int, rule PriceRule) (*Layout, error) {
	if rows < 1 || columns < 1 || rule == nil {
		return nil, ErrInvalidLayout
	}
	return &Layout{Rows: rows, Columns: columns, PriceRule: rule}, nil
}

// StepPriceRule は前方 frontRows 行を frontPrice、それ以降を rearPrice とする料金ルールを返す
func StepPriceRule(frontRows, frontPrice, rearPrice int) PriceRule {
	return func(row int) int {
		if row <= frontRows {
			return frontPrice
		}
		return rearPrice
	}
}

// Generate は全ての (row, column) の組に対する座席を生成する
func (l *Layout) Generate() []*Seat {
	seats := make([]*Seat, 0, l.Rows*l.Columns)
	for row := 1; row <= l.Rows; row++ {
		for column := 1; column <= l.Columns; column++ {
			seats = append(seats, NewSeat(row, column, l.PriceRule(row)))
		}
	}
	return seats
}

// Contains は座標がグリッドの範囲内かを返す
func (l *Layout) Contains(row, column int) bool {
	return row >= 1 && row <= l.Rows && column >= 1 && column <= l.Columns
}

// TotalSeats は総座席数を返す
func (l *Layout) TotalSeats() int {
	return l.Rows * l.Columns
}
