package services

import (
	"sort"
	"strconv"
	"strings"

	"sbd/internal/models"
)

const (
	SortDate     = "date"
	SortLikes    = "likes"
	SortComments = "comments"

	FilterAll = "all"
)

// FeedQuery is the caller-owned view state: no ambient filter/sort globals,
// every evaluation gets the full query explicitly.
type FeedQuery struct {
	Category string
	Search   string
	Sort     string
}

// PostView pairs a post with its interaction record for display.
type PostView struct {
	models.Post
	Record      models.InteractionRecord `json:"record"`
	ReadingTime string                   `json:"reading_time"`
}

type FeedServiceInterface interface {
	Evaluate(q FeedQuery) []PostView
}

// FeedService is the query engine over posts and interaction records. The
// result is recomputed in full on every call; list sizes are tens of posts,
// not thousands.
type FeedService struct {
	posts        PostServiceInterface
	interactions InteractionServiceInterface
}

func NewFeedService(posts PostServiceInterface, interactions InteractionServiceInterface) FeedServiceInterface {
	return &FeedService{posts: posts, interactions: interactions}
}

func (fs *FeedService) Evaluate(q FeedQuery) []PostView {
	posts := fs.posts.ListAll()
	records := fs.interactions.RecordMap()

	// Category filter.
	if q.Category != "" && q.Category != FilterAll {
		filtered := posts[:0]
		for _, p := range posts {
			if string(p.Category) == q.Category {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	// Case-insensitive substring search over title, content and excerpt.
	if q.Search != "" {
		query := strings.ToLower(q.Search)
		filtered := posts[:0]
		for _, p := range posts {
			if strings.Contains(strings.ToLower(p.Title), query) ||
				strings.Contains(strings.ToLower(p.Content), query) ||
				strings.Contains(strings.ToLower(p.Excerpt), query) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	recordFor := func(p models.Post) *models.InteractionRecord {
		if rec, ok := records[strconv.FormatInt(p.ID, 10)]; ok && rec != nil {
			return rec
		}
		return nil
	}
	likesOf := func(p models.Post) int {
		if rec := recordFor(p); rec != nil {
			return rec.Likes
		}
		return 0
	}
	commentsOf := func(p models.Post) int {
		if rec := recordFor(p); rec != nil {
			return len(rec.Comments)
		}
		return 0
	}

	// Stable sorts keep the original relative order on ties.
	switch q.Sort {
	case SortLikes:
		sort.SliceStable(posts, func(i, j int) bool {
			return likesOf(posts[i]) > likesOf(posts[j])
		})
	case SortComments:
		sort.SliceStable(posts, func(i, j int) bool {
			return commentsOf(posts[i]) > commentsOf(posts[j])
		})
	default: // date, newest first
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].ParsedDate().After(posts[j].ParsedDate())
		})
	}

	// Featured posts pinned first, each group keeping its sorted order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Featured && !posts[j].Featured
	})

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		rec := models.NewInteractionRecord()
		if r := recordFor(p); r != nil {
			rec = r
			if rec.Comments == nil {
				rec.Comments = []models.Comment{}
			}
		}
		views = append(views, PostView{
			Post:        p,
			Record:      *rec,
			ReadingTime: models.ReadingTime(p.Content),
		})
	}
	return views
}
