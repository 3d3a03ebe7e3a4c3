package model

type SubmitTaskRequest struct {
	TaskID string `json:"task_id"`

	// Input carries the type-specific attempt payload. The matching verifier
	// owns its shape.
	Input map[string]any `json:"input"`
}

// CheckinRequiredDetails is attached to a CheckinRequired error so clients
// can redirect straight to the checkin task of the attraction.
type CheckinRequiredDetails struct {
	CheckinTaskID string `json:"checkin_task_id"`
}

type PointsGranted struct {
	XP int64 `json:"xp"`
	EP int64 `json:"ep"`
}

type SubmitTaskResponse struct {
	IsCorrect   bool   `json:"is_correct"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation,omitempty"`

	SubmissionID  string        `json:"submission_id,omitempty"`
	PointsGranted PointsGranted `json:"points_granted"`
	NewRewards    []Reward      `json:"new_rewards,omitempty"`
	Progress      *Progress     `json:"progress,omitempty"`
	NextTaskID    string        `json:"next_task_id,omitempty"`
}

type Submission struct {
	ID        string         `json:"id"`
	TaskID    string         `json:"task_id"`
	TaskType  string         `json:"task_type"`
	IsCorrect bool           `json:"is_correct"`
	Score     int            `json:"score"`
	Answer    map[string]any `json:"answer,omitempty"`
	CreatedAt string         `json:"created_at"`
}

type GetMySubmissionsRequest struct {
	AttractionID string `json:"attraction_id"`
}

type GetMySubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
}
