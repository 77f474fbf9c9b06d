package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/application"
	"github.com/proclubshub/backend/pkg/response"
	"github.com/proclubshub/backend/pkg/validation"
)

type ReportHandler struct {
	Svc    *application.ReportService
	Logger *logrus.Logger
}

func NewReportHandler(svc *application.ReportService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{Svc: svc, Logger: logger}
}

type reportMatchRequest struct {
	MatchID string `json:"matchId" binding:"required"`
}

// ReportMatch accepts a match report and hands it to the notification queue.
// With no queue configured the report is acknowledged without delivery.
func (h *ReportHandler) ReportMatch(c *gin.Context) {
	var req reportMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	queued, err := h.Svc.Report(c.Request.Context(), req.MatchID, c.GetString("userEmail"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to queue match report", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"match_id": req.MatchID,
		"queued":   queued,
	}, "match report accepted", nil)
}
