package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"sbd/internal/models"
	"sbd/internal/providers"
	"sbd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type BlogController struct {
	logger       providers.Logger
	feed         services.FeedServiceInterface
	posts        services.PostServiceInterface
	interactions services.InteractionServiceInterface
	visits       services.VisitServiceInterface
	cache        providers.CacheProviderInterface
}

func NewBlogController(logger providers.Logger, feed services.FeedServiceInterface, posts services.PostServiceInterface, interactions services.InteractionServiceInterface, visits services.VisitServiceInterface, cache providers.CacheProviderInterface) *BlogController {
	return &BlogController{
		logger:       logger,
		feed:         feed,
		posts:        posts,
		interactions: interactions,
		visits:       visits,
		cache:        cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (bc *BlogController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := bc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	bc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (bc *BlogController) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := services.FeedQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Sort:     r.URL.Query().Get("sort"),
	}

	// Searches are free text, caching them would just churn the cache.
	if q.Search != "" {
		writeJSON(w, http.StatusOK, bc.feed.Evaluate(q))
		return
	}

	bc.serveFromCacheOrCompute(w, "feed:"+q.Category+":"+q.Sort, func() (any, error) {
		return bc.feed.Evaluate(q), nil
	})
}

type postDetail struct {
	models.Post
	Rendered      string                   `json:"rendered"`
	ReadingTime   string                   `json:"reading_time"`
	CategoryLabel string                   `json:"category_label"`
	Record        models.InteractionRecord `json:"record"`
}

func (bc *BlogController) GetPost(w http.ResponseWriter, r *http.Request) {
	id := cast.ToInt64(r.URL.Query().Get("id"))
	post, ok := bc.posts.FindByID(id)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	bc.serveFromCacheOrCompute(w, "post:"+r.URL.Query().Get("id"), func() (any, error) {
		return postDetail{
			Post:          post,
			Rendered:      models.RenderContent(post.Content),
			ReadingTime:   models.ReadingTime(post.Content),
			CategoryLabel: models.CategoryLabels[post.Category],
			Record:        bc.interactions.Record(post.ID),
		}, nil
	})
}

type categoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (bc *BlogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	bc.serveFromCacheOrCompute(w, "categories", func() (any, error) {
		cats := []categoryInfo{
			{ID: string(models.CategoryML), Label: models.CategoryLabels[models.CategoryML]},
			{ID: string(models.CategoryFrontend), Label: models.CategoryLabels[models.CategoryFrontend]},
			{ID: string(models.CategoryPersonal), Label: models.CategoryLabels[models.CategoryPersonal]},
		}
		return cats, nil
	})
}

func (bc *BlogController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id := cast.ToInt64(r.URL.Query().Get("id"))
	rec, err := bc.interactions.ToggleLike(id)
	if err != nil {
		bc.logger.Errorf(providers.TypePost, "Toggle like failed for post %d: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	bc.cache.Clear()
	writeJSON(w, http.StatusOK, rec)
}

func (bc *BlogController) ToggleStar(w http.ResponseWriter, r *http.Request) {
	id := cast.ToInt64(r.URL.Query().Get("id"))
	rec, err := bc.interactions.ToggleStar(id)
	if err != nil {
		bc.logger.Errorf(providers.TypePost, "Toggle star failed for post %d: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	bc.cache.Clear()
	writeJSON(w, http.StatusOK, rec)
}

type commentRequest struct {
	PostID int64  `json:"post_id"`
	Name   string `json:"name"`
	Text   string `json:"text"`
}

func (bc *BlogController) AddComment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload commentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	comment, added, err := bc.interactions.AddComment(payload.PostID, payload.Name, payload.Text)
	if err != nil {
		bc.logger.Errorf(providers.TypePost, "Add comment failed for post %d: %s", payload.PostID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !added {
		// Blank name or text: not an error, just nothing to record.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	bc.cache.Clear()
	writeJSON(w, http.StatusCreated, comment)
}

type visitRequest struct {
	Page   string `json:"page"`
	Device string `json:"device"`
}

func (bc *BlogController) RecordVisit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload visitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.Page == "" {
		payload.Page = "/"
	}
	if payload.Device == "" {
		payload.Device = "desktop"
	}
	bc.visits.AddVisit(&models.Visit{Page: payload.Page, Device: payload.Device})
	w.WriteHeader(http.StatusCreated)
}
