package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

func TestPostCreate_Success(t *testing.T) {
	posts := &mockRecords[models.Post]{
		createFunc: func(ctx context.Context, record *models.Post) error {
			record.ID = "p1"
			return nil
		},
	}
	svc := NewPostService(posts, schema.DefaultRegistry())

	post, err := svc.Create(context.Background(), "u1", "hello world")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.AuthorID != "u1" || post.Content != "hello world" {
		t.Errorf("unexpected post %+v", post)
	}
}

func TestPostCreate_MissingContent(t *testing.T) {
	created := false
	posts := &mockRecords[models.Post]{
		createFunc: func(ctx context.Context, record *models.Post) error {
			created = true
			return nil
		},
	}
	svc := NewPostService(posts, schema.DefaultRegistry())

	_, err := svc.Create(context.Background(), "u1", "")
	if err == nil {
		t.Fatal("expected validation error for missing content")
	}
	if kind := kindOf(t, err); kind != apperr.KindValidation {
		t.Errorf("kind = %s, want %s", kind, apperr.KindValidation)
	}
	if created {
		t.Error("validation failure must not reach the datastore")
	}
}

func TestPostGetByID_NotFound(t *testing.T) {
	posts := &mockRecords[models.Post]{
		findByIDFunc: func(ctx context.Context, id string, traversal query.Traversal) (*models.Post, error) {
			return nil, fmt.Errorf("failed to find Post by id %s: %w", id, gorm.ErrRecordNotFound)
		},
	}
	svc := NewPostService(posts, schema.DefaultRegistry())

	_, err := svc.GetByID(context.Background(), "missing", nil)
	if kind := kindOf(t, err); kind != apperr.KindNotFound {
		t.Errorf("kind = %s, want %s", kind, apperr.KindNotFound)
	}
}

func TestPostListWithCount_DatastoreFailure(t *testing.T) {
	posts := &mockRecords[models.Post]{
		findAllWithCountFunc: func(ctx context.Context, traversal query.Traversal) ([]models.Post, int64, error) {
			return nil, 0, errors.New("connection refused")
		},
	}
	svc := NewPostService(posts, schema.DefaultRegistry())

	_, _, err := svc.ListWithCount(context.Background(), nil)
	if kind := kindOf(t, err); kind != apperr.KindPersistence {
		t.Errorf("kind = %s, want %s", kind, apperr.KindPersistence)
	}
}

func TestCommentCreate_MissingText(t *testing.T) {
	comments := &mockRecords[models.Comment]{
		createFunc: func(ctx context.Context, record *models.Comment) error {
			return nil
		},
	}
	svc := NewCommentService(comments, schema.DefaultRegistry())

	_, err := svc.Create(context.Background(), "p1", "u1", "")
	if err == nil {
		t.Fatal("expected validation error for missing comment text")
	}
}

func TestCommentCreate_Success(t *testing.T) {
	comments := &mockRecords[models.Comment]{
		createFunc: func(ctx context.Context, record *models.Comment) error {
			record.ID = "c1"
			return nil
		},
	}
	svc := NewCommentService(comments, schema.DefaultRegistry())

	comment, err := svc.Create(context.Background(), "p1", "u1", "nice post")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.PostID != "p1" || comment.UserID != "u1" {
		t.Errorf("unexpected comment %+v", comment)
	}
}

func TestProfileCreate_MissingUsername(t *testing.T) {
	profiles := &mockRecords[models.Profile]{
		createFunc: func(ctx context.Context, record *models.Profile) error {
			return nil
		},
	}
	svc := NewProfileService(profiles, schema.DefaultRegistry())

	_, err := svc.Create(context.Background(), "u1", "", nil)
	if err == nil {
		t.Fatal("expected validation error for missing username")
	}
}

func TestProfileDelete_HardDeleteCount(t *testing.T) {
	profiles := &mockRecords[models.Profile]{
		deleteFunc: func(ctx context.Context, id string) (int64, error) {
			return 1, nil
		},
	}
	svc := NewProfileService(profiles, schema.DefaultRegistry())

	count, err := svc.Delete(context.Background(), "pr1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
