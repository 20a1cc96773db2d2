package service

import (
	"context"

	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/repository"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// CommentService exposes the comment record operations.
type CommentService interface {
	Create(ctx context.Context, postID, userID, text string) (*models.Comment, error)
	GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.Comment, error)
	ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.Comment, int64, error)
	Update(ctx context.Context, id string, text *string) (*models.Comment, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type commentService struct {
	comments repository.RecordRepository[models.Comment]
	registry *schema.Registry
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.RecordRepository[models.Comment], registry *schema.Registry) CommentService {
	return &commentService{comments: comments, registry: registry}
}

func (s *commentService) Create(ctx context.Context, postID, userID, text string) (*models.Comment, error) {
	fields := map[string]any{"post_id": postID, "user_id": userID, "comment": text}
	if err := s.registry.Validate(schema.EntityComment, fields, false); err != nil {
		return nil, err
	}

	comment := &models.Comment{PostID: postID, UserID: userID, Comment: text}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, wrapPersistence(err)
	}
	return comment, nil
}

func (s *commentService) GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id, traversal)
	if err != nil {
		return nil, wrapRead(schema.EntityComment, id, err)
	}
	return comment, nil
}

func (s *commentService) ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.Comment, int64, error) {
	comments, count, err := s.comments.FindAllWithCount(ctx, traversal)
	if err != nil {
		return nil, 0, wrapPersistence(err)
	}
	return comments, count, nil
}

func (s *commentService) Update(ctx context.Context, id string, text *string) (*models.Comment, error) {
	fields := map[string]any{}
	if text != nil {
		fields["comment"] = *text
	}
	if err := s.registry.Validate(schema.EntityComment, fields, true); err != nil {
		return nil, err
	}

	comment, err := s.comments.Update(ctx, id, fields)
	if err != nil {
		return nil, wrapRead(schema.EntityComment, id, err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id string) (int64, error) {
	count, err := s.comments.Delete(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	return count, nil
}
