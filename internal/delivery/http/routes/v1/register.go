package v1

import (
	"context"
	"log"
	"time"

	"resume-screen/internal/config"
	"resume-screen/internal/database"
	"resume-screen/internal/delivery/http/handler"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/infrastructure/cache"
	"resume-screen/internal/pkg/jwt"
	"resume-screen/internal/repository"
	"resume-screen/internal/screening"
	"resume-screen/internal/usecase"
	"resume-screen/internal/usecase/auth"
	"resume-screen/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

// Register wires repositories, usecases and handlers onto the v1
// router. The taxonomy snapshot is loaded once here, before any
// screening request can observe it.
func Register(r fiber.Router, deps Deps) error {
	if r == nil {
		return nil
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	screeningRepo := repository.NewPostgresScreeningRepository(deps.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(deps.DB)
	auditRepo := repository.NewPostgresAuditLogRepository(deps.DB)
	settingsRepo := repository.NewPostgresSettingsRepository(deps.DB)

	taxonomy := screening.NewTaxonomyStore(screening.DefaultTaxonomy())

	authUC := auth.NewService(userRepo, jwtSvc)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo, taxonomy, deps.Cache, deps.Logger)
	screeningUC := usecase.NewScreeningUsecase(screeningRepo, jobRepo, settingsUC)
	statusUC := usecase.NewStatusWorkflow(screeningRepo, jobRepo, notificationRepo, auditRepo, deps.Logger)
	analyticsUC := usecase.NewAnalyticsUsecase(jobRepo, screeningRepo, settingsUC, deps.Cache)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := settingsUC.LoadTaxonomy(ctx); err != nil {
		return err
	}

	authHandler := handler.NewAuthHandler(authUC)
	screeningHandler := handler.NewScreeningHandler(screeningUC, statusUC)
	statusHandler := handler.NewStatusHandler(statusUC)
	notificationHandler := handler.NewNotificationHandler(notificationUC)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC)
	jobHandler := handler.NewJobHandler(jobUC)
	settingsHandler := handler.NewSettingsHandler(settingsUC)
	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)

	authHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	authHandler.RegisterProtectedRoutes(protected)
	jobHandler.RegisterReadRoutes(protected)
	protected.Get("/ws/notifications", wsHandler.HandleNotificationsWS)

	jobseeker := protected.Group("", middleware.RequireRole(auth.RoleJobseeker))
	screeningHandler.RegisterRoutes(jobseeker)
	notificationHandler.RegisterRoutes(jobseeker)

	recruiter := protected.Group("", middleware.RequireRole(auth.RoleRecruiter, auth.RoleAdmin))
	statusHandler.RegisterRoutes(recruiter)
	analyticsHandler.RegisterRoutes(recruiter)
	jobHandler.RegisterWriteRoutes(recruiter)

	admin := protected.Group("", middleware.RequireRole(auth.RoleAdmin))
	settingsHandler.RegisterRoutes(admin)

	return nil
}
