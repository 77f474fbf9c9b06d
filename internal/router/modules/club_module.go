package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/proclubshub/backend/internal/interface/http"
	"github.com/proclubshub/backend/internal/interface/middleware"
	"github.com/proclubshub/backend/pkg/helpers"
)

// ClubModule wires club CRUD routes.
// Public: GET /api/clubs
// Protected (Bearer token): POST /api/clubs, PUT/DELETE /api/clubs/:id
type ClubModule struct {
	Handler *handlers.ClubHandler
	JWT     *helpers.JWTManager
}

func NewClubModule(h *handlers.ClubHandler, jwt *helpers.JWTManager) *ClubModule {
	return &ClubModule{Handler: h, JWT: jwt}
}

func (m *ClubModule) Register(rg *gin.RouterGroup) {
	rg.GET("/clubs", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/clubs", m.Handler.Create)
		auth.PUT("/clubs/:id", m.Handler.Update)
		auth.DELETE("/clubs/:id", m.Handler.Delete)
	}
}
