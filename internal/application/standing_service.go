package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/domain/entity"
	repo "github.com/proclubshub/backend/internal/domain/repository"
)

type StandingService struct {
	Repo   repo.StandingRepository
	Logger *logrus.Logger
}

func NewStandingService(r repo.StandingRepository, logger *logrus.Logger) *StandingService {
	return &StandingService{Repo: r, Logger: logger}
}

type UpdateStandingInput struct {
	Club           *string
	Points         *int
	Played         *int
	Won            *int
	Drawn          *int
	Lost           *int
	GoalsFor       *int
	GoalsAgainst   *int
	GoalDifference *int
}

// Table returns the league table, ordered by points descending.
func (s *StandingService) Table(ctx context.Context) ([]entity.StandingRow, error) {
	return s.Repo.List(ctx)
}

func (s *StandingService) Create(ctx context.Context, row *entity.Standing) error {
	if err := s.Repo.Create(ctx, row); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("club", row.Club).Error("create standing failed")
		}
		return err
	}
	return nil
}

func (s *StandingService) Update(ctx context.Context, id string, in UpdateStandingInput) (*entity.Standing, error) {
	row, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Club != nil {
		row.Club = *in.Club
	}
	if in.Points != nil {
		row.Points = *in.Points
	}
	if in.Played != nil {
		row.Played = *in.Played
	}
	if in.Won != nil {
		row.Won = *in.Won
	}
	if in.Drawn != nil {
		row.Drawn = *in.Drawn
	}
	if in.Lost != nil {
		row.Lost = *in.Lost
	}
	if in.GoalsFor != nil {
		row.GoalsFor = *in.GoalsFor
	}
	if in.GoalsAgainst != nil {
		row.GoalsAgainst = *in.GoalsAgainst
	}
	if in.GoalDifference != nil {
		row.GoalDifference = *in.GoalDifference
	}
	if err := s.Repo.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *StandingService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
