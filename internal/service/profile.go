package service

import (
	"context"

	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/repository"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// ProfileService exposes the profile record operations.
type ProfileService interface {
	Create(ctx context.Context, userID, username string, bio *string) (*models.Profile, error)
	GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.Profile, error)
	ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.Profile, int64, error)
	Update(ctx context.Context, id string, username, bio *string) (*models.Profile, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type profileService struct {
	profiles repository.RecordRepository[models.Profile]
	registry *schema.Registry
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(profiles repository.RecordRepository[models.Profile], registry *schema.Registry) ProfileService {
	return &profileService{profiles: profiles, registry: registry}
}

func (s *profileService) Create(ctx context.Context, userID, username string, bio *string) (*models.Profile, error) {
	fields := map[string]any{"user_id": userID, "username": username}
	if bio != nil {
		fields["bio"] = *bio
	}
	if err := s.registry.Validate(schema.EntityProfile, fields, false); err != nil {
		return nil, err
	}

	profile := &models.Profile{UserID: userID, Username: username, Bio: bio}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, wrapPersistence(err)
	}
	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id string, traversal query.Traversal) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id, traversal)
	if err != nil {
		return nil, wrapRead(schema.EntityProfile, id, err)
	}
	return profile, nil
}

func (s *profileService) ListWithCount(ctx context.Context, traversal query.Traversal) ([]models.Profile, int64, error) {
	profiles, count, err := s.profiles.FindAllWithCount(ctx, traversal)
	if err != nil {
		return nil, 0, wrapPersistence(err)
	}
	return profiles, count, nil
}

func (s *profileService) Update(ctx context.Context, id string, username, bio *string) (*models.Profile, error) {
	fields := map[string]any{}
	if username != nil {
		fields["username"] = *username
	}
	if bio != nil {
		fields["bio"] = *bio
	}
	if err := s.registry.Validate(schema.EntityProfile, fields, true); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Update(ctx, id, fields)
	if err != nil {
		return nil, wrapRead(schema.EntityProfile, id, err)
	}
	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, id string) (int64, error) {
	count, err := s.profiles.Delete(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	return count, nil
}
