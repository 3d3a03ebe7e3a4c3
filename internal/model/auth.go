package model

// AccessToken is the object carried inside a signed access token. The
// identity collaborator issues it; this service only verifies it.
type AccessToken struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
