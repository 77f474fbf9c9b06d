package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/application"
	"github.com/proclubshub/backend/pkg/response"
)

type EAHandler struct {
	Svc    *application.EAService
	Logger *logrus.Logger
}

func NewEAHandler(svc *application.EAService, logger *logrus.Logger) *EAHandler {
	return &EAHandler{Svc: svc, Logger: logger}
}

// ClubDetails proxies the EA club-info endpoint. The upstream JSON body is
// written through verbatim, not re-wrapped in the API envelope.
func (h *EAHandler) ClubDetails(c *gin.Context) {
	platform := c.Query("platform")
	clubID := c.Query("clubId")
	if platform == "" || clubID == "" {
		response.Error[any](c, http.StatusBadRequest, "Missing platform or clubId", nil)
		return
	}

	body, err := h.Svc.ClubDetails(c.Request.Context(), platform, clubID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithFields(logrus.Fields{
				"platform": platform,
				"club_id":  clubID,
			}).Error("ea clubdetails proxy failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "upstream request failed", err.Error())
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
