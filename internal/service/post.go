package service

import (
	"context"

	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/repository"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// PostService exposes the post record operations.
type PostService interface {
	Create(ctx context.Context, authorID, content string) (*models.Post, error)
	GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.Post, error)
	ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.Post, int64, error)
	Update(ctx context.Context, id string, content *string) (*models.Post, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type postService struct {
	posts    repository.RecordRepository[models.Post]
	registry *schema.Registry
}

// NewPostService creates a new PostService instance.
func NewPostService(posts repository.RecordRepository[models.Post], registry *schema.Registry) PostService {
	return &postService{posts: posts, registry: registry}
}

func (s *postService) Create(ctx context.Context, authorID, content string) (*models.Post, error) {
	fields := map[string]any{"author_id": authorID, "content": content}
	if err := s.registry.Validate(schema.EntityPost, fields, false); err != nil {
		return nil, err
	}

	post := &models.Post{AuthorID: authorID, Content: content}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, wrapPersistence(err)
	}
	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id, traversal)
	if err != nil {
		return nil, wrapRead(schema.EntityPost, id, err)
	}
	return post, nil
}

func (s *postService) ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.Post, int64, error) {
	posts, count, err := s.posts.FindAllWithCount(ctx, traversal)
	if err != nil {
		return nil, 0, wrapPersistence(err)
	}
	return posts, count, nil
}

func (s *postService) Update(ctx context.Context, id string, content *string) (*models.Post, error) {
	fields := map[string]any{}
	if content != nil {
		fields["content"] = *content
	}
	if err := s.registry.Validate(schema.EntityPost, fields, true); err != nil {
		return nil, err
	}

	post, err := s.posts.Update(ctx, id, fields)
	if err != nil {
		return nil, wrapRead(schema.EntityPost, id, err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) (int64, error) {
	count, err := s.posts.Delete(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	return count, nil
}
