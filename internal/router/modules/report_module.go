package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/proclubshub/backend/internal/interface/http"
)

// ReportModule exposes the match-report intake for the Discord pipeline.
type ReportModule struct {
	Handler *handlers.ReportHandler
}

func NewReportModule(h *handlers.ReportHandler) *ReportModule {
	return &ReportModule{Handler: h}
}

func (m *ReportModule) Register(rg *gin.RouterGroup) {
	rg.POST("/discord/report-match", m.Handler.ReportMatch)
}
