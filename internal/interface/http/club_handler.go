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

type ClubHandler struct {
	Svc    *application.ClubService
	Logger *logrus.Logger
}

func NewClubHandler(svc *application.ClubService, logger *logrus.Logger) *ClubHandler {
	return &ClubHandler{Svc: svc, Logger: logger}
}

type createClubRequest struct {
	Name        string            `json:"name" binding:"required"`
	Logo        string            `json:"logo"`
	Description string            `json:"description"`
	Stats       *entity.ClubStats `json:"stats"`
}

type updateClubRequest struct {
	Name        *string           `json:"name"`
	Logo        *string           `json:"logo"`
	Description *string           `json:"description"`
	Stats       *entity.ClubStats `json:"stats"`
}

type clubResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Logo        string           `json:"logo"`
	Description string           `json:"description"`
	Stats       entity.ClubStats `json:"stats"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toClubResponse(c *entity.Club) clubResponse {
	return clubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Logo:        c.Logo,
		Description: c.Description,
		Stats:       c.Stats,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list clubs", err.Error())
		return
	}
	out := make([]clubResponse, 0, len(clubs))
	for i := range clubs {
		out = append(out, toClubResponse(&clubs[i]))
	}
	response.Success(c, http.StatusOK, out, "clubs", nil)
}

func (h *ClubHandler) Create(c *gin.Context) {
	var req createClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	club := &entity.Club{Name: req.Name, Logo: req.Logo, Description: req.Description}
	if req.Stats != nil {
		club.Stats = *req.Stats
	}
	if err := h.Svc.Create(c.Request.Context(), club); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create club", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, toClubResponse(club), "club created", nil)
}

func (h *ClubHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	club, err := h.Svc.Update(c.Request.Context(), id, application.UpdateClubInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Stats:       req.Stats,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "club not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update club", err.Error())
		return
	}
	response.Success(c, http.StatusOK, toClubResponse(club), "club updated", nil)
}

// Delete is idempotent and always answers 204.
func (h *ClubHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to delete club", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
