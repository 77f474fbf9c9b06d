package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/domain/entity"
	repo "github.com/proclubshub/backend/internal/domain/repository"
)

// ClubService is the application layer over the club resource store.
// Partial update semantics live here: only fields present in the input
// overwrite the stored record.
type ClubService struct {
	Repo   repo.ClubRepository
	Logger *logrus.Logger
}

func NewClubService(r repo.ClubRepository, logger *logrus.Logger) *ClubService {
	return &ClubService{Repo: r, Logger: logger}
}

// UpdateClubInput carries the fields a PUT may replace; nil means "keep".
type UpdateClubInput struct {
	Name        *string
	Logo        *string
	Description *string
	Stats       *entity.ClubStats
}

func (s *ClubService) List(ctx context.Context) ([]entity.Club, error) {
	return s.Repo.List(ctx)
}

func (s *ClubService) Create(ctx context.Context, c *entity.Club) error {
	if err := s.Repo.Create(ctx, c); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", c.Name).Error("create club failed")
		}
		return err
	}
	return nil
}

func (s *ClubService) Update(ctx context.Context, id string, in UpdateClubInput) (*entity.Club, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Logo != nil {
		c.Logo = *in.Logo
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Stats != nil {
		c.Stats = *in.Stats
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClubService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
