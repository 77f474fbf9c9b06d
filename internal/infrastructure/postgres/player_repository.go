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

type PlayerRepository struct {
	pool *pgxpool.Pool
}

func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

func (r *PlayerRepository) List(ctx context.Context) ([]entity.Player, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, club, stats, created_at, updated_at
		FROM players
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []entity.Player{}
	for rows.Next() {
		var p entity.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Club, &p.Stats,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	p := &entity.Player{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, club, stats, created_at, updated_at
		FROM players
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Name, &p.Club, &p.Stats,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p *entity.Player) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO players (name, club, stats)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Club, p.Stats)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PlayerRepository) Update(ctx context.Context, p *entity.Player) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE players
		SET name = $1, club = $2, stats = $3, updated_at = $4
		WHERE id = $5
	`, p.Name, p.Club, p.Stats, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	return err
}

var _ repository.PlayerRepository = (*PlayerRepository)(nil)
