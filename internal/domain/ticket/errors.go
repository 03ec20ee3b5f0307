package ticket

import "errors"

// Ticket ドメインのエラー定義
var (
	ErrTicketNotFound = errors.New("トークンが正しくありません")
)
