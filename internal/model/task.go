package model

type Task struct {
	ID           string `json:"id"`
	AttractionID string `json:"attraction_id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Index        int    `json:"index"`
}

type GetTaskRequest struct {
	ID string `json:"id"`
}

type GetTaskResponse Task

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type GetQuizRequest struct {
	TaskID string `json:"task_id"`
}

type GetQuizResponse struct {
	TaskID    string         `json:"task_id"`
	Questions []QuizQuestion `json:"questions"`
}
