package models

// Draft is an unpublished post. Drafts carry stable ids so editing one does
// not require removing it from the store first.
type Draft struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
	Content  string   `json:"content"`
	Featured bool     `json:"featured"`
}

// DraftFields is the editable subset shared by drafts and publish requests.
type DraftFields struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
	Content  string   `json:"content"`
	Featured bool     `json:"featured"`
}
