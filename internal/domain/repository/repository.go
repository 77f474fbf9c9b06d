package repository

import (
	"context"
	"errors"

	"github.com/proclubshub/backend/internal/domain/entity"
)

// ErrNotFound is returned by lookups and updates that match no row.
var ErrNotFound = errors.New("not found")

// UserRepository defines the credential store contract.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ClubRepository is the persistence contract for clubs.
// Delete is idempotent: deleting a missing id is not an error.
type ClubRepository interface {
	List(ctx context.Context) ([]entity.Club, error)
	GetByID(ctx context.Context, id string) (*entity.Club, error)
	Create(ctx context.Context, c *entity.Club) error
	Update(ctx context.Context, c *entity.Club) error
	Delete(ctx context.Context, id string) error
}

// PlayerRepository is the persistence contract for players.
type PlayerRepository interface {
	List(ctx context.Context) ([]entity.Player, error)
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Create(ctx context.Context, p *entity.Player) error
	Update(ctx context.Context, p *entity.Player) error
	Delete(ctx context.Context, id string) error
}

// StandingRepository is the persistence contract for league-table rows.
// List returns rows ordered by points descending (ties: oldest row first)
// with the owning club's logo joined in.
type StandingRepository interface {
	List(ctx context.Context) ([]entity.StandingRow, error)
	GetByID(ctx context.Context, id string) (*entity.Standing, error)
	Create(ctx context.Context, s *entity.Standing) error
	Update(ctx context.Context, s *entity.Standing) error
	Delete(ctx context.Context, id string) error
}
