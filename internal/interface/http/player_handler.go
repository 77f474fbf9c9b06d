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

type PlayerHandler struct {
	Svc    *application.PlayerService
	Logger *logrus.Logger
}

func NewPlayerHandler(svc *application.PlayerService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{Svc: svc, Logger: logger}
}

type createPlayerRequest struct {
	Name  string              `json:"name" binding:"required"`
	Club  string              `json:"club"`
	Stats *entity.PlayerStats `json:"stats"`
}

type updatePlayerRequest struct {
	Name  *string             `json:"name"`
	Club  *string             `json:"club"`
	Stats *entity.PlayerStats `json:"stats"`
}

type playerResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Club      string             `json:"club"`
	Stats     entity.PlayerStats `json:"stats"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func toPlayerResponse(p *entity.Player) playerResponse {
	return playerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Club:      p.Club,
		Stats:     p.Stats,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list players", err.Error())
		return
	}
	out := make([]playerResponse, 0, len(players))
	for i := range players {
		out = append(out, toPlayerResponse(&players[i]))
	}
	response.Success(c, http.StatusOK, out, "players", nil)
}

func (h *PlayerHandler) Create(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	player := &entity.Player{Name: req.Name, Club: req.Club}
	if req.Stats != nil {
		player.Stats = *req.Stats
	}
	if err := h.Svc.Create(c.Request.Context(), player); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create player", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, toPlayerResponse(player), "player created", nil)
}

func (h *PlayerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	player, err := h.Svc.Update(c.Request.Context(), id, application.UpdatePlayerInput{
		Name:  req.Name,
		Club:  req.Club,
		Stats: req.Stats,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "player not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update player", err.Error())
		return
	}
	response.Success(c, http.StatusOK, toPlayerResponse(player), "player updated", nil)
}

func (h *PlayerHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to delete player", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
