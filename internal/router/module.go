package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the API (auth, clubs, players, standings,
// the EA proxy, match reports) registering its own routes on the API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
