package repository

import (
	"context"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// ForumRepository reads and writes forum posts.
type ForumRepository struct {
	posts *store.Collection[models.ForumPost]
}

// NewForumRepository constructs ForumRepository.
func NewForumRepository(s *store.Store) *ForumRepository {
	return &ForumRepository{posts: s.ForumPosts}
}

// CreatePost appends a discussion thread.
func (r *ForumRepository) CreatePost(ctx context.Context, post models.ForumPost) error {
	r.posts.Append(post)
	return nil
}

// FindPost returns the post with id.
func (r *ForumRepository) FindPost(ctx context.Context, id string) (*models.ForumPost, error) {
	post, ok := r.posts.Find(func(p models.ForumPost) bool { return p.ID == id })
	if !ok {
		return nil, ErrNoRecord
	}
	return &post, nil
}

// AddReply appends reply to the post with postID and returns the updated
// post.
func (r *ForumRepository) AddReply(ctx context.Context, postID string, reply models.ForumReply) (*models.ForumPost, error) {
	var updated models.ForumPost
	found := r.posts.Update(
		func(p models.ForumPost) bool { return p.ID == postID },
		func(p *models.ForumPost) {
			p.Replies = append(p.Replies, reply)
			updated = *p
		},
	)
	if !found {
		return nil, ErrNoRecord
	}
	return &updated, nil
}

// ListByCourse returns a course's posts in store order.
func (r *ForumRepository) ListByCourse(ctx context.Context, courseID string) ([]models.ForumPost, error) {
	return r.posts.Filter(func(p models.ForumPost) bool { return p.CourseID == courseID }), nil
}
