package model

type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url,omitempty"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

type GetMyRewardsRequest struct{}

type GetMyRewardsResponse struct {
	Rewards []Reward `json:"rewards"`
}
