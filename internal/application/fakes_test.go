package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/proclubshub/backend/internal/domain/entity"
	"github.com/proclubshub/backend/internal/domain/repository"
)

// In-memory repositories for service tests. They mirror the Postgres
// implementations: not-found sentinels, idempotent deletes, standings
// ordered by points descending with insertion order breaking ties.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeClubRepo struct {
	mu    sync.Mutex
	clubs []entity.Club
}

func (r *fakeClubRepo) List(_ context.Context) ([]entity.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Club, len(r.clubs))
	copy(out, r.clubs)
	return out, nil
}

func (r *fakeClubRepo) GetByID(_ context.Context, id string) (*entity.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clubs {
		if r.clubs[i].ID == id {
			c := r.clubs[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClubRepo) Create(_ context.Context, c *entity.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.clubs = append(r.clubs, *c)
	return nil
}

func (r *fakeClubRepo) Update(_ context.Context, c *entity.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clubs {
		if r.clubs[i].ID == c.ID {
			c.UpdatedAt = time.Now()
			r.clubs[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeClubRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clubs {
		if r.clubs[i].ID == id {
			r.clubs = append(r.clubs[:i], r.clubs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePlayerRepo struct {
	mu      sync.Mutex
	players []entity.Player
}

func (r *fakePlayerRepo) List(_ context.Context) ([]entity.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Player, len(r.players))
	copy(out, r.players)
	return out, nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].ID == id {
			p := r.players[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlayerRepo) Create(_ context.Context, p *entity.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.players = append(r.players, *p)
	return nil
}

func (r *fakePlayerRepo) Update(_ context.Context, p *entity.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.players[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePlayerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeStandingRepo struct {
	mu    sync.Mutex
	rows  []entity.Standing
	logos map[string]string // club name -> logo
}

func (r *fakeStandingRepo) List(_ context.Context) ([]entity.StandingRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.StandingRow, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, entity.StandingRow{Standing: s, Logo: r.logos[s.Club]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out, nil
}

func (r *fakeStandingRepo) GetByID(_ context.Context, id string) (*entity.Standing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			s := r.rows[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeStandingRepo) Create(_ context.Context, s *entity.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.rows = append(r.rows, *s)
	return nil
}

func (r *fakeStandingRepo) Update(_ context.Context, s *entity.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == s.ID {
			s.UpdatedAt = time.Now()
			r.rows[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeStandingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.ClubRepository     = (*fakeClubRepo)(nil)
	_ repository.PlayerRepository   = (*fakePlayerRepo)(nil)
	_ repository.StandingRepository = (*fakeStandingRepo)(nil)
)
