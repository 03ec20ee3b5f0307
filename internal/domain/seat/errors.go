package seat

import "errors"

// Seat ドメインのエラー定義
var (
	ErrOutOfBounds      = errors.New("行または列の番号が範囲外です")
	ErrAlreadyPurchased = errors.New("そのチケットは既に購入されています")
	ErrInvalidLayout    = errors.New("座席レイアウトが不正です")
)
