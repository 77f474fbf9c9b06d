package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/proclubshub/backend/internal/domain/entity"
	"github.com/proclubshub/backend/internal/domain/repository"
)

type StandingRepository struct {
	pool *pgxpool.Pool
}

func NewStandingRepository(pool *pgxpool.Pool) *StandingRepository {
	return &StandingRepository{pool: pool}
}

// List orders the table by points descending; ties keep insertion order so a
// test run sees a stable table. The club logo is joined by name and comes
// back empty when the reference dangles.
func (r *StandingRepository) List(ctx context.Context) ([]entity.StandingRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.club, s.points, s.played, s.won, s.drawn, s.lost,
		       s.goals_for, s.goals_against, s.goal_difference,
		       s.created_at, s.updated_at,
		       COALESCE(c.logo, '')
		FROM standings s
		LEFT JOIN clubs c ON c.name = s.club
		ORDER BY s.points DESC, s.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := []entity.StandingRow{}
	for rows.Next() {
		var row entity.StandingRow
		if err := rows.Scan(&row.ID, &row.Club, &row.Points, &row.Played,
			&row.Won, &row.Drawn, &row.Lost, &row.GoalsFor, &row.GoalsAgainst,
			&row.GoalDifference, &row.CreatedAt, &row.UpdatedAt, &row.Logo); err != nil {
			return nil, err
		}
		table = append(table, row)
	}
	return table, rows.Err()
}

func (r *StandingRepository) GetByID(ctx context.Context, id string) (*entity.Standing, error) {
	s := &entity.Standing{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, club, points, played, won, drawn, lost,
		       goals_for, goals_against, goal_difference, created_at, updated_at
		FROM standings
		WHERE id = $1
	`, id)

	if err := row.Scan(&s.ID, &s.Club, &s.Points, &s.Played, &s.Won, &s.Drawn,
		&s.Lost, &s.GoalsFor, &s.GoalsAgainst, &s.GoalDifference,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *StandingRepository) Create(ctx context.Context, s *entity.Standing) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO standings (club, points, played, won, drawn, lost,
		                       goals_for, goals_against, goal_difference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, s.Club, s.Points, s.Played, s.Won, s.Drawn, s.Lost,
		s.GoalsFor, s.GoalsAgainst, s.GoalDifference)

	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StandingRepository) Update(ctx context.Context, s *entity.Standing) error {
	s.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE standings
		SET club = $1, points = $2, played = $3, won = $4, drawn = $5, lost = $6,
		    goals_for = $7, goals_against = $8, goal_difference = $9, updated_at = $10
		WHERE id = $11
	`, s.Club, s.Points, s.Played, s.Won, s.Drawn, s.Lost,
		s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *StandingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM standings WHERE id = $1`, id)
	return err
}

var _ repository.StandingRepository = (*StandingRepository)(nil)
