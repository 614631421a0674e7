package models

// CommentDateFormat is the short form used for comment dates ("15 Dec 2024").
const CommentDateFormat = "2 Jan 2006"

type Comment struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// InteractionRecord holds the mutable per-post state. Likes and stars track a
// single reader's toggles, not a tally across distinct visitors; there is
// exactly one reader per store.
type InteractionRecord struct {
	Likes       int       `json:"likes"`
	Stars       int       `json:"stars"`
	Comments    []Comment `json:"comments"`
	UserLiked   bool      `json:"user_liked"`
	UserStarred bool      `json:"user_starred"`
}

// NewInteractionRecord returns the zero-value record used for posts that have
// never been interacted with.
func NewInteractionRecord() *InteractionRecord {
	return &InteractionRecord{Comments: []Comment{}}
}
