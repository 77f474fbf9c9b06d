package router

import (
	"github.com/proclubshub/backend/internal/application"
	"github.com/proclubshub/backend/internal/container"
	pginfra "github.com/proclubshub/backend/internal/infrastructure/postgres"
	handlers "github.com/proclubshub/backend/internal/interface/http"
	"github.com/proclubshub/backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()
	jwt := container.GetJWT()

	authSvc := application.NewAuthService(pginfra.NewUserRepository(pool), jwt, logger)
	clubSvc := application.NewClubService(pginfra.NewClubRepository(pool), logger)
	playerSvc := application.NewPlayerService(pginfra.NewPlayerRepository(pool), logger)
	standingSvc := application.NewStandingService(pginfra.NewStandingRepository(pool), logger)
	eaSvc := application.NewEAService(cfg.EABaseURL, container.GetRedis(), cfg.EACacheTTL, logger)

	var pub application.ReportPublisher
	if rp := container.GetRabbitPub(); rp != nil {
		pub = rp
	}
	reportSvc := application.NewReportService(pub, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewClubModule(handlers.NewClubHandler(clubSvc, logger), jwt))
	r.Add(modules.NewPlayerModule(handlers.NewPlayerHandler(playerSvc, logger), jwt))
	r.Add(modules.NewStandingModule(handlers.NewStandingHandler(standingSvc, logger), jwt))
	r.Add(modules.NewEAModule(handlers.NewEAHandler(eaSvc, logger)))
	r.Add(modules.NewReportModule(handlers.NewReportHandler(reportSvc, logger)))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pool)))
}
