package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/application"
	"github.com/proclubshub/backend/internal/domain/entity"
	"github.com/proclubshub/backend/internal/domain/repository"
	"github.com/proclubshub/backend/pkg/response"
	"github.com/proclubshub/backend/pkg/validation"
)

type StandingHandler struct {
	Svc    *application.StandingService
	Logger *logrus.Logger
}

func NewStandingHandler(svc *application.StandingService, logger *logrus.Logger) *StandingHandler {
	return &StandingHandler{Svc: svc, Logger: logger}
}

type createStandingRequest struct {
	Club           string `json:"club" binding:"required"`
	Points         int    `json:"points"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

type updateStandingRequest struct {
	Club           *string `json:"club"`
	Points         *int    `json:"points"`
	Played         *int    `json:"played"`
	Won            *int    `json:"won"`
	Drawn          *int    `json:"drawn"`
	Lost           *int    `json:"lost"`
	GoalsFor       *int    `json:"goalsFor"`
	GoalsAgainst   *int    `json:"goalsAgainst"`
	GoalDifference *int    `json:"goalDifference"`
}

type standingResponse struct {
	ID             string    `json:"id"`
	Club           string    `json:"club"`
	Points         int       `json:"points"`
	Played         int       `json:"played"`
	Won            int       `json:"won"`
	Drawn          int       `json:"drawn"`
	Lost           int       `json:"lost"`
	GoalsFor       int       `json:"goalsFor"`
	GoalsAgainst   int       `json:"goalsAgainst"`
	GoalDifference int       `json:"goalDifference"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// tableRow is the display reshape of a standings row: short field names,
// club logo joined in, ordered by points descending.
type tableRow struct {
	Club string `json:"club"`
	Logo string `json:"logo"`
	P    int    `json:"p"`
	W    int    `json:"w"`
	D    int    `json:"d"`
	L    int    `json:"l"`
	GF   int    `json:"gf"`
	GA   int    `json:"ga"`
	GD   int    `json:"gd"`
	Pts  int    `json:"pts"`
}

func toStandingResponse(s *entity.Standing) standingResponse {
	return standingResponse{
		ID:             s.ID,
		Club:           s.Club,
		Points:         s.Points,
		Played:         s.Played,
		Won:            s.Won,
		Drawn:          s.Drawn,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// List returns the league table in display form.
func (h *StandingHandler) List(c *gin.Context) {
	rows, err := h.Svc.Table(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list standings", err.Error())
		return
	}
	table := make([]tableRow, 0, len(rows))
	for _, r := range rows {
		table = append(table, tableRow{
			Club: r.Club,
			Logo: r.Logo,
			P:    r.Played,
			W:    r.Won,
			D:    r.Drawn,
			L:    r.Lost,
			GF:   r.GoalsFor,
			GA:   r.GoalsAgainst,
			GD:   r.GoalDifference,
			Pts:  r.Points,
		})
	}
	response.Success(c, http.StatusOK, table, "standings", nil)
}

func (h *StandingHandler) Create(c *gin.Context) {
	var req createStandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	row := &entity.Standing{
		Club:           req.Club,
		Points:         req.Points,
		Played:         req.Played,
		Won:            req.Won,
		Drawn:          req.Drawn,
		Lost:           req.Lost,
		GoalsFor:       req.GoalsFor,
		GoalsAgainst:   req.GoalsAgainst,
		GoalDifference: req.GoalDifference,
	}
	if err := h.Svc.Create(c.Request.Context(), row); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create standing", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, toStandingResponse(row), "standing created", nil)
}

func (h *StandingHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateStandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	row, err := h.Svc.Update(c.Request.Context(), id, application.UpdateStandingInput{
		Club:           req.Club,
		Points:         req.Points,
		Played:         req.Played,
		Won:            req.Won,
		Drawn:          req.Drawn,
		Lost:           req.Lost,
		GoalsFor:       req.GoalsFor,
		GoalsAgainst:   req.GoalsAgainst,
		GoalDifference: req.GoalDifference,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "standing not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update standing", err.Error())
		return
	}
	response.Success(c, http.StatusOK, toStandingResponse(row), "standing updated", nil)
}

func (h *StandingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to delete standing", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
