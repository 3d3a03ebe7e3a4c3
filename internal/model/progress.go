package model

type Progress struct {
	AttractionID       string `json:"attraction_id"`
	CompletedTasks     int    `json:"completed_tasks"`
	TotalTasks         int    `json:"total_tasks"`
	ProgressPercentage int    `json:"progress_percentage"`
	CompletedAt        string `json:"completed_at,omitempty"`
}

type GetProgressRequest struct {
	AttractionID string `json:"attraction_id"`
}

type GetProgressResponse Progress
