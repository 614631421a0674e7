package services

// Store is the durable key-value layer the services persist into. Read
// returns false and leaves out untouched when the key is missing or its value
// does not decode; Write persists the full state before returning.
type Store interface {
	Read(key string, out any) bool
	Write(key string, val any) error
}

// Well-known store keys. Each key is owned by exactly one service; nothing
// else reads or writes it.
const (
	KeyPosts        = "posts"
	KeyInteractions = "interactions"
	KeyDrafts       = "drafts"
	KeyAnalytics    = "analytics"
)
