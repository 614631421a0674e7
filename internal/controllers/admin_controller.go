package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"github.com/spf13/cast"

	"sbd/internal/models"
	"sbd/internal/providers"
	"sbd/internal/services"
)

type AdminController struct {
	logger providers.Logger
	posts  services.PostServiceInterface
	drafts services.DraftServiceInterface
	visits services.VisitServiceInterface
	cache  providers.CacheProviderInterface
}

func NewAdminController(logger providers.Logger, posts services.PostServiceInterface, drafts services.DraftServiceInterface, visits services.VisitServiceInterface, cache providers.CacheProviderInterface) *AdminController {
	return &AdminController{
		logger: logger,
		posts:  posts,
		drafts: drafts,
		visits: visits,
		cache:  cache,
	}
}

type publishRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required|in:ml,frontend,personal"`
	Image    string `json:"image"`
	Content  string `json:"content" validate:"required"`
	Featured bool   `json:"featured"`
	EditID   int64  `json:"edit_id"`
}

func (pr *publishRequest) fields() models.DraftFields {
	return models.DraftFields{
		Title:    pr.Title,
		Category: models.Category(pr.Category),
		Image:    pr.Image,
		Content:  pr.Content,
		Featured: pr.Featured,
	}
}

func (ac *AdminController) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.posts.UserPosts())
}

func (ac *AdminController) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload publishRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if v := validate.Struct(&payload); !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return
	}

	post, err := ac.posts.Publish(payload.fields(), payload.EditID)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Publish failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Clear()
	ac.logger.Infof(providers.TypePost, "Published post %d: %s", post.ID, post.Title)
	writeJSON(w, http.StatusCreated, post)
}

func (ac *AdminController) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := cast.ToInt64(r.URL.Query().Get("id"))
	if err := ac.posts.Delete(id); err != nil {
		ac.logger.Errorf(providers.TypePost, "Delete failed for post %d: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) ListDrafts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.drafts.List())
}

func (ac *AdminController) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := ac.drafts.Get(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

type draftRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Content  string `json:"content"`
	Featured bool   `json:"featured"`
}

func (dr *draftRequest) fields() models.DraftFields {
	return models.DraftFields{
		Title:    dr.Title,
		Category: models.Category(dr.Category),
		Image:    dr.Image,
		Content:  dr.Content,
		Featured: dr.Featured,
	}
}

func (ac *AdminController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload draftRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	draft, err := ac.drafts.Save(payload.fields())
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Save draft failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

func (ac *AdminController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload draftRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	draft, ok, err := ac.drafts.Update(payload.ID, payload.fields())
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Update draft %s failed: %s", payload.ID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (ac *AdminController) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if _, err := ac.drafts.Delete(id); err != nil {
		ac.logger.Errorf(providers.TypePost, "Delete draft %s failed: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.visits.GetSnapshot())
}
