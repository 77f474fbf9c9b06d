package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/proclubshub/backend/internal/application"
	"github.com/proclubshub/backend/internal/domain/entity"
	"github.com/proclubshub/backend/internal/domain/repository"
	handlers "github.com/proclubshub/backend/internal/interface/http"
	"github.com/proclubshub/backend/internal/interface/middleware"
	"github.com/proclubshub/backend/internal/router"
	"github.com/proclubshub/backend/internal/router/modules"
	"github.com/proclubshub/backend/pkg/helpers"
	"github.com/proclubshub/backend/pkg/validation"
)

// envelope mirrors response.APIResponse for decoding in assertions.
type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

type memUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users = append(r.users, *u)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
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

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
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

type memClubRepo struct {
	mu    sync.Mutex
	clubs []entity.Club
}

func (r *memClubRepo) List(_ context.Context) ([]entity.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Club, len(r.clubs))
	copy(out, r.clubs)
	return out, nil
}

func (r *memClubRepo) GetByID(_ context.Context, id string) (*entity.Club, error) {
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

func (r *memClubRepo) Create(_ context.Context, c *entity.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.clubs = append(r.clubs, *c)
	return nil
}

func (r *memClubRepo) Update(_ context.Context, c *entity.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clubs {
		if r.clubs[i].ID == c.ID {
			r.clubs[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memClubRepo) Delete(_ context.Context, id string) error {
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

type memStandingRepo struct {
	mu    sync.Mutex
	rows  []entity.Standing
	logos map[string]string
}

func (r *memStandingRepo) List(_ context.Context) ([]entity.StandingRow, error) {
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

func (r *memStandingRepo) GetByID(_ context.Context, id string) (*entity.Standing, error) {
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

func (r *memStandingRepo) Create(_ context.Context, s *entity.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.rows = append(r.rows, *s)
	return nil
}

func (r *memStandingRepo) Update(_ context.Context, s *entity.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == s.ID {
			r.rows[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memStandingRepo) Delete(_ context.Context, id string) error {
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

type memPublisher struct {
	mu        sync.Mutex
	published []any
}

func (p *memPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, body)
	return nil
}

type testEnv struct {
	engine    *gin.Engine
	jwt       *helpers.JWTManager
	users     *memUserRepo
	clubs     *memClubRepo
	standings *memStandingRepo
	publisher *memPublisher
	eaBaseURL string
}

func newTestEnv(t *testing.T, eaBaseURL string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	env := &testEnv{
		jwt:       helpers.NewJWTManager("test-secret", time.Hour),
		users:     &memUserRepo{},
		clubs:     &memClubRepo{},
		standings: &memStandingRepo{logos: map[string]string{}},
		publisher: &memPublisher{},
		eaBaseURL: eaBaseURL,
	}

	authSvc := application.NewAuthService(env.users, env.jwt, nil)
	clubSvc := application.NewClubService(env.clubs, nil)
	standingSvc := application.NewStandingService(env.standings, nil)
	eaSvc := application.NewEAService(eaBaseURL, nil, 0, nil)
	reportSvc := application.NewReportService(env.publisher, nil)

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, nil)))
	reg.Add(modules.NewClubModule(handlers.NewClubHandler(clubSvc, nil), env.jwt))
	reg.Add(modules.NewStandingModule(handlers.NewStandingHandler(standingSvc, nil), env.jwt))
	reg.Add(modules.NewEAModule(handlers.NewEAHandler(eaSvc, nil)))
	reg.Add(modules.NewReportModule(handlers.NewReportHandler(reportSvc, nil)))
	reg.RegisterAll()

	env.engine = engine
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, _, err := e.jwt.Generate(uuid.NewString(), "tester@proclubshub.dev")
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
