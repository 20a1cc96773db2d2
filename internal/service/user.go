package service

import (
	"context"

	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/repository"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// CreateUserInput carries the fields of a user create request.
type CreateUserInput struct {
	Name string
	Age  *int
}

// UpdateUserInput carries a partial field set; nil fields stay untouched.
type UpdateUserInput struct {
	Name *string
	Age  *int
}

// CreateProfileInput carries the profile fields of the combined
// user-with-profile create on the social surface.
type CreateProfileInput struct {
	Username string
	Bio      *string
}

// UserService exposes the user record operations used by both surfaces.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*models.User, error)
	CreateWithProfile(ctx context.Context, in CreateUserInput, profile CreateProfileInput) (*models.User, *models.Profile, error)
	GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.User, error)
	List(ctx context.Context, filter query.UserFilter) ([]models.User, error)
	ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.User, int64, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type userService struct {
	users    repository.UserRepository
	profiles repository.RecordRepository[models.Profile]
	registry *schema.Registry
}

// NewUserService creates a new UserService instance.
func NewUserService(users repository.UserRepository, profiles repository.RecordRepository[models.Profile], registry *schema.Registry) UserService {
	return &userService{
		users:    users,
		profiles: profiles,
		registry: registry,
	}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	fields := map[string]any{"name": in.Name}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if err := s.registry.Validate(schema.EntityUser, fields, false); err != nil {
		return nil, err
	}

	user := &models.User{Name: in.Name, Age: in.Age}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, wrapPersistence(err)
	}
	return user, nil
}

// CreateWithProfile performs two independent writes, as the social
// surface always did. A profile failure after the user write leaves the
// user without a profile; the error is surfaced, not compensated.
func (s *userService) CreateWithProfile(ctx context.Context, in CreateUserInput, profile CreateProfileInput) (*models.User, *models.Profile, error) {
	user, err := s.Create(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	fields := map[string]any{"user_id": user.ID, "username": profile.Username}
	if profile.Bio != nil {
		fields["bio"] = *profile.Bio
	}
	if err := s.registry.Validate(schema.EntityProfile, fields, false); err != nil {
		return nil, nil, err
	}

	created := &models.Profile{UserID: user.ID, Username: profile.Username, Bio: profile.Bio}
	if err := s.profiles.Create(ctx, created); err != nil {
		return nil, nil, wrapPersistence(err)
	}
	return user, created, nil
}

func (s *userService) GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id, traversal)
	if err != nil {
		return nil, wrapRead(schema.EntityUser, id, err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, filter query.UserFilter) ([]models.User, error) {
	users, err := s.users.FindFiltered(ctx, filter)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return users, nil
}

func (s *userService) ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.User, int64, error) {
	users, count, err := s.users.FindAllWithCount(ctx, traversal)
	if err != nil {
		return nil, 0, wrapPersistence(err)
	}
	return users, count, nil
}

func (s *userService) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if err := s.registry.Validate(schema.EntityUser, fields, true); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, wrapRead(schema.EntityUser, id, err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) (int64, error) {
	count, err := s.users.Delete(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	return count, nil
}
