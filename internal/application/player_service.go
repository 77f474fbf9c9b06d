package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/domain/entity"
	repo "github.com/proclubshub/backend/internal/domain/repository"
)

type PlayerService struct {
	Repo   repo.PlayerRepository
	Logger *logrus.Logger
}

func NewPlayerService(r repo.PlayerRepository, logger *logrus.Logger) *PlayerService {
	return &PlayerService{Repo: r, Logger: logger}
}

type UpdatePlayerInput struct {
	Name  *string
	Club  *string
	Stats *entity.PlayerStats
}

func (s *PlayerService) List(ctx context.Context) ([]entity.Player, error) {
	return s.Repo.List(ctx)
}

func (s *PlayerService) Create(ctx context.Context, p *entity.Player) error {
	if err := s.Repo.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", p.Name).Error("create player failed")
		}
		return err
	}
	return nil
}

func (s *PlayerService) Update(ctx context.Context, id string, in UpdatePlayerInput) (*entity.Player, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Club != nil {
		p.Club = *in.Club
	}
	if in.Stats != nil {
		p.Stats = *in.Stats
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlayerService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
