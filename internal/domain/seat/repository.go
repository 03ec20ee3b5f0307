package seat

// Inventory は購入可能な座席の集合を保持するインターフェース
type Inventory interface {
	// List は現在購入可能な座席の一覧を返す（読み取り専用ビュー）
	List() []*Seat

	// Claim は指定座標の座席を購入可能集合から原子的に取り除いて返す
	// 範囲外の座標には ErrOutOfBounds、購入済み座席には ErrAlreadyPurchased を返す
	Claim(row, column int) (*Seat, error)

	// Release は取り除かれた座席を購入可能集合へ戻す
	Release(s *Seat)

	// CountAvailable は購入可能な座席数を返す
	CountAvailable() int

	// Rows はグリッドの行数を返す
	Rows() int

	// Columns はグリッドの列数を返す
	Columns() int
}
