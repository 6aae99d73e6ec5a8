package models

type ContactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ShareLinks struct {
	X        string `json:"x"`
	LinkedIn string `json:"linkedin"`
	Line     string `json:"line"`
}

type FavoriteStatus struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}
