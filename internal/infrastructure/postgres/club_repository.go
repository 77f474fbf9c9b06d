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

type ClubRepository struct {
	pool *pgxpool.Pool
}

func NewClubRepository(pool *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

func (r *ClubRepository) List(ctx context.Context) ([]entity.Club, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, logo, description, stats, created_at, updated_at
		FROM clubs
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []entity.Club{}
	for rows.Next() {
		var c entity.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Logo, &c.Description, &c.Stats,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*entity.Club, error) {
	c := &entity.Club{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, logo, description, stats, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.Name, &c.Logo, &c.Description, &c.Stats,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ClubRepository) Create(ctx context.Context, c *entity.Club) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clubs (name, logo, description, stats)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Logo, c.Description, c.Stats)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ClubRepository) Update(ctx context.Context, c *entity.Club) error {
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE clubs
		SET name = $1, logo = $2, description = $3, stats = $4, updated_at = $5
		WHERE id = $6
	`, c.Name, c.Logo, c.Description, c.Stats, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete is idempotent: zero rows affected is still success.
func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	return err
}

var _ repository.ClubRepository = (*ClubRepository)(nil)
