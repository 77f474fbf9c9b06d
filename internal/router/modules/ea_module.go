package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/proclubshub/backend/internal/interface/http"
)

// EAModule exposes the public passthrough proxy to the EA club-data provider.
type EAModule struct {
	Handler *handlers.EAHandler
}

func NewEAModule(h *handlers.EAHandler) *EAModule {
	return &EAModule{Handler: h}
}

func (m *EAModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ea/clubdetails", m.Handler.ClubDetails)
}
