package models

import "time"

type Category string

const (
	CategoryML       Category = "ml"
	CategoryFrontend Category = "frontend"
	CategoryPersonal Category = "personal"
)

// CategoryLabels maps a category to its display label.
var CategoryLabels = map[Category]string{
	CategoryML:       "Machine Learning",
	CategoryFrontend: "Frontend",
	CategoryPersonal: "Personal",
}

func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// DisplayDateFormat is the long form used for post dates ("December 15, 2024").
const DisplayDateFormat = "January 2, 2006"

type Post struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Category Category `json:"category"`
	Featured bool     `json:"featured"`
	Image    string   `json:"image"`
	Gallery  []string `json:"gallery"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
}

// ParsedDate parses the display date. Posts with an unparseable date sort as
// the zero time, i.e. older than everything else.
func (p *Post) ParsedDate() time.Time {
	t, err := time.Parse(DisplayDateFormat, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
