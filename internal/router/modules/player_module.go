package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/proclubshub/backend/internal/interface/http"
	"github.com/proclubshub/backend/internal/interface/middleware"
	"github.com/proclubshub/backend/pkg/helpers"
)

// PlayerModule mirrors the club route pattern for players.
type PlayerModule struct {
	Handler *handlers.PlayerHandler
	JWT     *helpers.JWTManager
}

func NewPlayerModule(h *handlers.PlayerHandler, jwt *helpers.JWTManager) *PlayerModule {
	return &PlayerModule{Handler: h, JWT: jwt}
}

func (m *PlayerModule) Register(rg *gin.RouterGroup) {
	rg.GET("/players", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/players", m.Handler.Create)
		auth.PUT("/players/:id", m.Handler.Update)
		auth.DELETE("/players/:id", m.Handler.Delete)
	}
}
