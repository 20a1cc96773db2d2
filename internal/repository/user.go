package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// UserRepository extends the generic record operations with the filtered
// listing of the users surface and an unscoped lookup that can still see
// soft-deleted rows.
type UserRepository interface {
	RecordRepository[models.User]
	FindFiltered(ctx context.Context, filter query.UserFilter) ([]models.User, error)
	FindByIDUnscoped(ctx context.Context, id string) (*models.User, error)
}

type userRepository struct {
	RecordRepository[models.User]
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB, graph *schema.Graph) UserRepository {
	return &userRepository{
		RecordRepository: NewRecords[models.User](db, graph, schema.EntityUser),
		db:               db,
	}
}

// FindFiltered lists users matching the conjunction of the present
// filters. Soft-deleted users are excluded by the default scope.
func (r *userRepository) FindFiltered(ctx context.Context, filter query.UserFilter) ([]models.User, error) {
	var users []models.User
	if err := filter.Apply(r.db.WithContext(ctx)).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByIDUnscoped bypasses the soft-delete scope, so a deleted user is
// still returned with its deletion timestamp set.
func (r *userRepository) FindByIDUnscoped(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Unscoped().First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find user by id %s: %w", id, err)
	}
	return &user, nil
}
