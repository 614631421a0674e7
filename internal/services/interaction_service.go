package services

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"sbd/internal/models"
)

type InteractionServiceInterface interface {
	Record(postID int64) models.InteractionRecord
	RecordMap() map[string]*models.InteractionRecord
	ToggleLike(postID int64) (models.InteractionRecord, error)
	ToggleStar(postID int64) (models.InteractionRecord, error)
	AddComment(postID int64, name, text string) (models.Comment, bool, error)
}

// InteractionService keeps the per-post likes/stars/comments map. Records are
// created lazily: reading a post that has no record returns the zero value
// without persisting anything. mu covers the whole read-modify-write of a
// mutation; the store serializes single calls only.
type InteractionService struct {
	mu    sync.Mutex
	store Store
}

func NewInteractionService(store Store) InteractionServiceInterface {
	return &InteractionService{store: store}
}

func recordKey(postID int64) string {
	return strconv.FormatInt(postID, 10)
}

func (is *InteractionService) records() map[string]*models.InteractionRecord {
	recs := map[string]*models.InteractionRecord{}
	is.store.Read(KeyInteractions, &recs)
	return recs
}

func (is *InteractionService) RecordMap() map[string]*models.InteractionRecord {
	return is.records()
}

func (is *InteractionService) Record(postID int64) models.InteractionRecord {
	if rec, ok := is.records()[recordKey(postID)]; ok && rec != nil {
		if rec.Comments == nil {
			rec.Comments = []models.Comment{}
		}
		return *rec
	}
	return *models.NewInteractionRecord()
}

func (is *InteractionService) mutate(postID int64, fn func(*models.InteractionRecord)) (models.InteractionRecord, error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	recs := is.records()
	key := recordKey(postID)
	rec, ok := recs[key]
	if !ok || rec == nil {
		rec = models.NewInteractionRecord()
		recs[key] = rec
	}
	if rec.Comments == nil {
		rec.Comments = []models.Comment{}
	}

	fn(rec)

	if err := is.store.Write(KeyInteractions, recs); err != nil {
		return models.InteractionRecord{}, err
	}
	return *rec, nil
}

func (is *InteractionService) ToggleLike(postID int64) (models.InteractionRecord, error) {
	return is.mutate(postID, func(rec *models.InteractionRecord) {
		if rec.UserLiked {
			rec.Likes--
			rec.UserLiked = false
		} else {
			rec.Likes++
			rec.UserLiked = true
		}
		if rec.Likes < 0 {
			rec.Likes = 0
		}
	})
}

func (is *InteractionService) ToggleStar(postID int64) (models.InteractionRecord, error) {
	return is.mutate(postID, func(rec *models.InteractionRecord) {
		if rec.UserStarred {
			rec.Stars--
			rec.UserStarred = false
		} else {
			rec.Stars++
			rec.UserStarred = true
		}
		if rec.Stars < 0 {
			rec.Stars = 0
		}
	})
}

// AddComment appends a comment with a freshly formatted date. Empty name or
// text after trimming is a silent no-op: no record is created, nothing is
// persisted.
func (is *InteractionService) AddComment(postID int64, name, text string) (models.Comment, bool, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if name == "" || text == "" {
		return models.Comment{}, false, nil
	}

	comment := models.Comment{
		Name: name,
		Text: text,
		Date: time.Now().Format(models.CommentDateFormat),
	}

	if _, err := is.mutate(postID, func(rec *models.InteractionRecord) {
		rec.Comments = append(rec.Comments, comment)
	}); err != nil {
		return models.Comment{}, false, err
	}
	return comment, true, nil
}
