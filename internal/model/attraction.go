package model

type Attraction struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	TotalTasks  int     `json:"total_tasks"`
}

type GetAttractionRequest struct {
	ID string `json:"id"`
}

type GetAttractionResponse struct {
	Attraction
	Tasks []Task `json:"tasks"`
}

type GetListAttractionRequest struct {
	Category string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListAttractionResponse struct {
	Attractions []Attraction `json:"attractions"`
}
