package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbd/internal/models"
)

func TestInteractionService_Record_MissingIsZero(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	rec := is.Record(42)
	assert.Equal(t, 0, rec.Likes)
	assert.Equal(t, 0, rec.Stars)
	assert.NotNil(t, rec.Comments)
	assert.Empty(t, rec.Comments)

	// reading must not create or persist anything
	assert.Equal(t, 0, store.writes)
}

func TestInteractionService_ToggleLike_RoundTrip(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	rec, err := is.ToggleLike(42)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Likes)
	assert.True(t, rec.UserLiked)

	rec, err = is.ToggleLike(42)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Likes)
	assert.False(t, rec.UserLiked)

	assert.Equal(t, 2, store.writes)
}

func TestInteractionService_ToggleLike_PersistsAcrossInstances(t *testing.T) {
	store := newTestStore()

	_, err := NewInteractionService(store).ToggleLike(42)
	require.NoError(t, err)

	rec := NewInteractionService(store).Record(42)
	assert.Equal(t, 1, rec.Likes)
	assert.True(t, rec.UserLiked)
}

func TestInteractionService_ToggleLike_ClampsAtZero(t *testing.T) {
	store := newTestStore()
	// inconsistent persisted state: flag set but counter already at zero
	require.NoError(t, store.Write(KeyInteractions, map[string]*models.InteractionRecord{
		"42": {Likes: 0, UserLiked: true, Comments: []models.Comment{}},
	}))
	is := NewInteractionService(store)

	rec, err := is.ToggleLike(42)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Likes)
	assert.False(t, rec.UserLiked)
}

func TestInteractionService_ToggleStar_RoundTrip(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	rec, err := is.ToggleStar(7)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Stars)
	assert.True(t, rec.UserStarred)

	rec, err = is.ToggleStar(7)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Stars)
	assert.False(t, rec.UserStarred)
}

func TestInteractionService_LikesAndStarsIndependent(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	_, err := is.ToggleLike(7)
	require.NoError(t, err)
	rec, err := is.ToggleStar(7)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Likes)
	assert.Equal(t, 1, rec.Stars)
}

func TestInteractionService_AddComment(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	comment, ok, err := is.AddComment(42, "Alice", "Great post!")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", comment.Name)
	assert.Equal(t, "Great post!", comment.Text)
	assert.Equal(t, time.Now().Format(models.CommentDateFormat), comment.Date)

	rec := is.Record(42)
	require.Len(t, rec.Comments, 1)
	assert.Equal(t, "Great post!", rec.Comments[0].Text)
}

func TestInteractionService_AddComment_TrimsWhitespace(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	comment, ok, err := is.AddComment(42, "  Bob  ", "  nice  ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Bob", comment.Name)
	assert.Equal(t, "nice", comment.Text)
}

func TestInteractionService_AddComment_EmptyIsSilentNoop(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	_, ok, err := is.AddComment(42, "", "text")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = is.AddComment(42, "name", "   ")
	require.NoError(t, err)
	assert.False(t, ok)

	// nothing created, nothing persisted
	assert.Equal(t, 0, store.writes)
	assert.Empty(t, is.RecordMap())
}

func TestInteractionService_AddComment_AppendsInOrder(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	_, _, err := is.AddComment(42, "A", "first")
	require.NoError(t, err)
	_, _, err = is.AddComment(42, "B", "second")
	require.NoError(t, err)

	rec := is.Record(42)
	require.Len(t, rec.Comments, 2)
	assert.Equal(t, "first", rec.Comments[0].Text)
	assert.Equal(t, "second", rec.Comments[1].Text)
}

func TestInteractionService_MutatePropagatesStoreError(t *testing.T) {
	store := newTestStore()
	store.writeErr = assert.AnError
	is := NewInteractionService(store)

	_, err := is.ToggleLike(42)
	assert.Error(t, err)
}

func TestInteractionService_ConcurrentTogglesStayBalanced(t *testing.T) {
	store := newTestStore()
	is := NewInteractionService(store)

	const workers = 8
	const pairs = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(postID int64) {
			defer wg.Done()
			for i := 0; i < pairs; i++ {
				_, err := is.ToggleLike(postID)
				assert.NoError(t, err)
				_, err = is.ToggleLike(postID)
				assert.NoError(t, err)
			}
		}(int64(w + 1))
	}
	wg.Wait()

	// every worker toggled its own post an even number of times
	for w := 0; w < workers; w++ {
		rec := is.Record(int64(w + 1))
		assert.Equal(t, 0, rec.Likes)
		assert.False(t, rec.UserLiked)
	}
}
