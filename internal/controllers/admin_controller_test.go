package controllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbd/internal/models"
	"sbd/internal/services"
	"sbd/internal/structures"
	"sbd/internal/testutil"
)

type adminFixture struct {
	store      *testutil.MockStore
	cache      *testutil.MockCache
	posts      services.PostServiceInterface
	drafts     services.DraftServiceInterface
	visits     services.VisitServiceInterface
	controller *AdminController
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	store := testutil.NewMockStore()
	cache := testutil.NewMockCache()
	conf := &structures.Config{
		Blog: structures.BlogConfig{DefaultImage: "https://example.com/d.jpg", ExcerptLength: 100},
	}
	posts := services.NewPostService(store, conf)
	drafts := services.NewDraftService(store)
	visits := services.NewVisitService()
	controller := NewAdminController(&testutil.MockLogger{}, posts, drafts, visits, cache)
	return &adminFixture{
		store:      store,
		cache:      cache,
		posts:      posts,
		drafts:     drafts,
		visits:     visits,
		controller: controller,
	}
}

func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestAdminController_Publish(t *testing.T) {
	f := newAdminFixture(t)

	body := strings.NewReader(`{"title":"New Post","category":"ml","content":"Some content"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/publish", body)
	rr := httptest.NewRecorder()
	f.controller.Publish(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, "New Post", post.Title)
	assert.Greater(t, post.ID, int64(3))
	assert.Equal(t, "https://example.com/d.jpg", post.Image)
	assert.Equal(t, 1, f.cache.Clears)
}

func TestAdminController_Publish_MissingTitle(t *testing.T) {
	f := newAdminFixture(t)

	body := strings.NewReader(`{"category":"ml","content":"text"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/publish", body)
	rr := httptest.NewRecorder()
	f.controller.Publish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, f.posts.UserPosts())
}

func TestAdminController_Publish_InvalidCategory(t *testing.T) {
	f := newAdminFixture(t)

	body := strings.NewReader(`{"title":"X","category":"backend","content":"text"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/publish", body)
	rr := httptest.NewRecorder()
	f.controller.Publish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminController_Publish_BadJSON(t *testing.T) {
	f := newAdminFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/publish", strings.NewReader("{oops"))
	rr := httptest.NewRecorder()
	f.controller.Publish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminController_Publish_EditInPlace(t *testing.T) {
	f := newAdminFixture(t)

	original, err := f.posts.Publish(models.DraftFields{Title: "v1", Category: models.CategoryML, Content: "old"}, 0)
	require.NoError(t, err)

	body := strings.NewReader(`{"title":"v2","category":"ml","content":"new","edit_id":` + idParam(original.ID) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/publish", body)
	rr := httptest.NewRecorder()
	f.controller.Publish(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	user := f.posts.UserPosts()
	require.Len(t, user, 1)
	assert.Equal(t, original.ID, user[0].ID)
	assert.Equal(t, "v2", user[0].Title)
}

func TestAdminController_DeletePost(t *testing.T) {
	f := newAdminFixture(t)

	post, err := f.posts.Publish(models.DraftFields{Title: "Doomed", Category: models.CategoryML, Content: "x"}, 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/delete?id="+idParam(post.ID), nil)
	rr := httptest.NewRecorder()
	f.controller.DeletePost(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, f.posts.UserPosts())
	assert.Equal(t, 1, f.cache.Clears)
}

func TestAdminController_DeletePost_UnknownStillNoContent(t *testing.T) {
	f := newAdminFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/delete?id=999", nil)
	rr := httptest.NewRecorder()
	f.controller.DeletePost(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAdminController_ListUserPosts(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.posts.Publish(models.DraftFields{Title: "Mine", Category: models.CategoryML, Content: "x"}, 0)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	f.controller.ListUserPosts(rr, httptest.NewRequest(http.MethodGet, "/admin/posts", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Mine", posts[0].Title)
}

func TestAdminController_SaveDraft(t *testing.T) {
	f := newAdminFixture(t)

	body := strings.NewReader(`{"title":"WIP","category":"personal","content":"draft text"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/draft", body)
	rr := httptest.NewRecorder()
	f.controller.SaveDraft(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var draft models.Draft
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, "WIP", draft.Title)
}

func TestAdminController_GetDraft(t *testing.T) {
	f := newAdminFixture(t)

	saved, err := f.drafts.Save(models.DraftFields{Title: "WIP"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/draft?id="+saved.ID, nil)
	rr := httptest.NewRecorder()
	f.controller.GetDraft(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var draft models.Draft
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, saved.ID, draft.ID)
}

func TestAdminController_GetDraft_NotFound(t *testing.T) {
	f := newAdminFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/draft?id=missing", nil)
	rr := httptest.NewRecorder()
	f.controller.GetDraft(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminController_UpdateDraft(t *testing.T) {
	f := newAdminFixture(t)

	saved, err := f.drafts.Save(models.DraftFields{Title: "v1"})
	require.NoError(t, err)

	body := strings.NewReader(`{"id":"` + saved.ID + `","title":"v2","content":"updated"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/draft/update", body)
	rr := httptest.NewRecorder()
	f.controller.UpdateDraft(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	got, ok := f.drafts.Get(saved.ID)
	require.True(t, ok)
	assert.Equal(t, "v2", got.Title)
}

func TestAdminController_UpdateDraft_NotFound(t *testing.T) {
	f := newAdminFixture(t)

	body := strings.NewReader(`{"id":"missing","title":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/draft/update", body)
	rr := httptest.NewRecorder()
	f.controller.UpdateDraft(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminController_DeleteDraft(t *testing.T) {
	f := newAdminFixture(t)

	saved, err := f.drafts.Save(models.DraftFields{Title: "bye"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/draft/delete?id="+saved.ID, nil)
	rr := httptest.NewRecorder()
	f.controller.DeleteDraft(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, f.drafts.List())
}

func TestAdminController_ListDrafts(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.drafts.Save(models.DraftFields{Title: "a"})
	require.NoError(t, err)
	_, err = f.drafts.Save(models.DraftFields{Title: "b"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	f.controller.ListDrafts(rr, httptest.NewRequest(http.MethodGet, "/admin/drafts", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var drafts []models.Draft
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &drafts))
	assert.Len(t, drafts, 2)
}

func TestAdminController_Analytics(t *testing.T) {
	f := newAdminFixture(t)

	f.visits.AddVisit(&models.Visit{Page: "/", Device: "desktop"})
	f.visits.AggregateVisits(0)

	rr := httptest.NewRecorder()
	f.controller.Analytics(rr, httptest.NewRequest(http.MethodGet, "/admin/analytics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var data models.AnalyticsData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &data))
	assert.Equal(t, 1, data.TotalVisits)
}
