package model

type GetPointBalanceRequest struct{}

type GetPointBalanceResponse struct {
	XP int64 `json:"xp"`
	EP int64 `json:"ep"`
}

type PointLedgerEntry struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Reason     string `json:"reason"`
	SourceType string `json:"source_type"`
	SourceID   string `json:"source_id"`
	CreatedAt  string `json:"created_at"`
}

type GetPointHistoryRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetPointHistoryResponse struct {
	Entries []PointLedgerEntry `json:"entries"`
}
