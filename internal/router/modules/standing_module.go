package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/proclubshub/backend/internal/interface/http"
	"github.com/proclubshub/backend/internal/interface/middleware"
	"github.com/proclubshub/backend/pkg/helpers"
)

// StandingModule mirrors the club route pattern; GET returns the reshaped
// league table rather than raw rows.
type StandingModule struct {
	Handler *handlers.StandingHandler
	JWT     *helpers.JWTManager
}

func NewStandingModule(h *handlers.StandingHandler, jwt *helpers.JWTManager) *StandingModule {
	return &StandingModule{Handler: h, JWT: jwt}
}

func (m *StandingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/standings", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/standings", m.Handler.Create)
		auth.PUT("/standings/:id", m.Handler.Update)
		auth.DELETE("/standings/:id", m.Handler.Delete)
	}
}
