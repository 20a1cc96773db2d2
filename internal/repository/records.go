// Package repository provides the data access layer for both services.
// One generic implementation serves every entity; the schema registry and
// association graph parameterize it instead of duplicating per-resource
// repositories.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// RecordRepository defines the persistence operations shared by all
// entities. Traversals are resolved through the association graph before
// any statement is executed.
type RecordRepository[T any] interface {
	Create(ctx context.Context, record *T) error
	FindByID(ctx context.Context, id string, traversal query.Traversal) (*T, error)
	FindAll(ctx context.Context, traversal query.Traversal) ([]T, error)
	FindAllWithCount(ctx context.Context, traversal query.Traversal) ([]T, int64, error)
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type records[T any] struct {
	db     *gorm.DB
	graph  *schema.Graph
	entity string
}

// NewRecords creates the repository for one entity of the graph.
func NewRecords[T any](db *gorm.DB, graph *schema.Graph, entity string) RecordRepository[T] {
	return &records[T]{db: db, graph: graph, entity: entity}
}

func (r *records[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	return nil
}

func (r *records[T]) FindByID(ctx context.Context, id string, traversal query.Traversal) (*T, error) {
	tx, err := query.Scope(r.db.WithContext(ctx), r.graph, r.entity, traversal)
	if err != nil {
		return nil, err
	}
	var record T
	if err := tx.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find %s by id %s: %w", r.entity, id, err)
	}
	if err := query.NormalizeLoaded(r.graph, r.entity, traversal, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *records[T]) FindAll(ctx context.Context, traversal query.Traversal) ([]T, error) {
	tx, err := query.Scope(r.db.WithContext(ctx), r.graph, r.entity, traversal)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.entity, err)
	}
	if err := query.NormalizeLoaded(r.graph, r.entity, traversal, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *records[T]) FindAllWithCount(ctx context.Context, traversal query.Traversal) ([]T, int64, error) {
	// Resolve the traversal before the count statement, so an unknown
	// alias fails without touching the datastore.
	if _, err := query.PreloadPaths(r.graph, r.entity, traversal); err != nil {
		return nil, 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.entity, err)
	}
	rows, err := r.FindAll(ctx, traversal)
	if err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *records[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", r.entity, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to update %s %s: %w", r.entity, id, gorm.ErrRecordNotFound)
	}
	// Re-read so the caller always sees post-update state.
	return r.FindByID(ctx, id, nil)
}

func (r *records[T]) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete %s %s: %w", r.entity, id, res.Error)
	}
	return res.RowsAffected, nil
}
