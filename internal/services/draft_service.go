package services

import (
	"sync"

	"github.com/google/uuid"

	"sbd/internal/models"
)

type DraftServiceInterface interface {
	List() []models.Draft
	Save(fields models.DraftFields) (models.Draft, error)
	Get(id string) (models.Draft, bool)
	Update(id string, fields models.DraftFields) (models.Draft, bool, error)
	Delete(id string) (bool, error)
}

// DraftService keeps unpublished posts. Drafts get stable uuid ids, so
// editing one is a plain read: nothing is removed until the caller decides to
// delete or publish it. mu covers the read-modify-write of each mutation; the
// store serializes single calls only.
type DraftService struct {
	mu    sync.Mutex
	store Store
}

func NewDraftService(store Store) DraftServiceInterface {
	return &DraftService{store: store}
}

func (ds *DraftService) drafts() []models.Draft {
	drafts := []models.Draft{}
	ds.store.Read(KeyDrafts, &drafts)
	return drafts
}

func (ds *DraftService) List() []models.Draft {
	return ds.drafts()
}

func (ds *DraftService) Save(fields models.DraftFields) (models.Draft, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	draft := models.Draft{
		ID:       uuid.NewString(),
		Title:    fields.Title,
		Category: fields.Category,
		Image:    fields.Image,
		Content:  fields.Content,
		Featured: fields.Featured,
	}
	drafts := append(ds.drafts(), draft)
	if err := ds.store.Write(KeyDrafts, drafts); err != nil {
		return models.Draft{}, err
	}
	return draft, nil
}

func (ds *DraftService) Get(id string) (models.Draft, bool) {
	for _, d := range ds.drafts() {
		if d.ID == id {
			return d, true
		}
	}
	return models.Draft{}, false
}

func (ds *DraftService) Update(id string, fields models.DraftFields) (models.Draft, bool, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	drafts := ds.drafts()
	for i := range drafts {
		if drafts[i].ID == id {
			drafts[i].Title = fields.Title
			drafts[i].Category = fields.Category
			drafts[i].Image = fields.Image
			drafts[i].Content = fields.Content
			drafts[i].Featured = fields.Featured
			if err := ds.store.Write(KeyDrafts, drafts); err != nil {
				return models.Draft{}, false, err
			}
			return drafts[i], true, nil
		}
	}
	return models.Draft{}, false, nil
}

// Delete removes the draft with the given id. Unknown ids are a silent no-op.
func (ds *DraftService) Delete(id string) (bool, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	drafts := ds.drafts()
	kept := drafts[:0]
	for _, d := range drafts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(drafts) {
		return false, nil
	}
	if err := ds.store.Write(KeyDrafts, kept); err != nil {
		return false, err
	}
	return true, nil
}
