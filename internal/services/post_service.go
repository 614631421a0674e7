package services

import (
	"sync"
	"time"

	"sbd/internal/models"
	"sbd/internal/structures"
)

type PostServiceInterface interface {
	ListAll() []models.Post
	UserPosts() []models.Post
	FindByID(id int64) (models.Post, bool)
	Publish(fields models.DraftFields, editID int64) (models.Post, error)
	Delete(id int64) error
}

// PostService merges the immutable built-in posts with user posts held in the
// store. Built-ins always come first; user posts keep insertion order. mu
// covers the read-modify-write of Publish and Delete so concurrent mutations
// cannot drop each other's updates.
type PostService struct {
	mu    sync.Mutex
	store Store
	conf  *structures.Config
}

func NewPostService(store Store, conf *structures.Config) PostServiceInterface {
	return &PostService{store: store, conf: conf}
}

func (ps *PostService) userPosts() []models.Post {
	posts := []models.Post{}
	ps.store.Read(KeyPosts, &posts)
	return posts
}

func (ps *PostService) ListAll() []models.Post {
	return append(models.BuiltinPosts(), ps.userPosts()...)
}

func (ps *PostService) FindByID(id int64) (models.Post, bool) {
	for _, p := range ps.ListAll() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

func (ps *PostService) UserPosts() []models.Post {
	return ps.userPosts()
}

// Publish appends a new user post, or replaces the user post editID in place
// when it exists. Built-in posts can never match editID: their ids live below
// the minted range and are never handed out as edit targets.
func (ps *PostService) Publish(fields models.DraftFields, editID int64) (models.Post, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	posts := ps.userPosts()

	image := fields.Image
	if image == "" {
		image = ps.conf.Blog.DefaultImage
	}

	post := models.Post{
		Title:    fields.Title,
		Date:     time.Now().Format(models.DisplayDateFormat),
		Category: fields.Category,
		Featured: fields.Featured,
		Image:    image,
		Gallery:  []string{},
		Excerpt:  models.MakeExcerpt(fields.Content, ps.conf.Blog.ExcerptLength),
		Content:  fields.Content,
	}

	replaced := false
	if editID != 0 {
		for i := range posts {
			if posts[i].ID == editID {
				post.ID = editID
				posts[i] = post
				replaced = true
				break
			}
		}
	}
	if !replaced {
		post.ID = ps.mintID(posts)
		posts = append(posts, post)
	}

	if err := ps.store.Write(KeyPosts, posts); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// mintID derives ids from the millisecond clock, which keeps them disjoint
// from the small built-in ids. Bumps on collision so two publishes within the
// same millisecond still get distinct ids.
func (ps *PostService) mintID(posts []models.Post) int64 {
	taken := make(map[int64]struct{}, len(posts)+len(models.BuiltinPosts()))
	for _, p := range posts {
		taken[p.ID] = struct{}{}
	}
	for _, p := range models.BuiltinPosts() {
		taken[p.ID] = struct{}{}
	}

	id := time.Now().UnixMilli()
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}

// Delete removes the user post with the given id. Unknown and built-in ids
// are a silent no-op.
func (ps *PostService) Delete(id int64) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	posts := ps.userPosts()
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return nil
	}
	return ps.store.Write(KeyPosts, kept)
}
