package model

type GetLeaderboardRequest struct {
	Range string `json:"range"`
	Type  string `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type UserAggregate struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	TotalTasks  uint64 `json:"total_tasks"`
	TotalXP     uint64 `json:"total_xp"`
	TotalEP     uint64 `json:"total_ep"`
	PrevRank    uint64 `json:"prev_rank"`
	CurrentRank uint64 `json:"current_rank"`
}

type GetLeaderboardResponse struct {
	Leaderboard []UserAggregate `json:"leaderboard"`
}
