package service

import (
	"context"
	"unicode/utf8"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Content string
}

type ListPostsInput struct {
	// Author restricts the listing to a single author's username. Empty
	// means all authors. An unknown name yields an empty listing.
	Author string
	Limit  int
	Offset int
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost publishes a new post. Content is capped at 280 runes so
// multi-byte text is measured the way users count characters; an empty
// post is allowed.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if utf8.RuneCountInString(in.Content) > models.MaxPostContentLength {
		return nil, models.NewValidationError("Post content exceeds 280 characters")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Content: in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		// The row exists; return it without the preloaded author rather than fail.
		return post, nil
	}
	return created, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.List(ctx, in.Author, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
