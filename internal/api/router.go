package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/teamsynchq/teamsync/internal/api/handler"
	customMiddleware "github.com/teamsynchq/teamsync/internal/api/middleware"
	"github.com/teamsynchq/teamsync/internal/authz"
	"github.com/teamsynchq/teamsync/internal/config"
	"github.com/teamsynchq/teamsync/internal/repository/postgres"
	"github.com/teamsynchq/teamsync/internal/repository/redis"
	"github.com/teamsynchq/teamsync/internal/security"
	"github.com/teamsynchq/teamsync/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Authorization core: built once, injected everywhere
	registry := authz.NewRegistry()
	guard := authz.NewGuard(registry)

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	workspaceRepo := postgres.NewWorkspaceRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	// Redis-backed components
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	analyticsCache := redis.NewAnalyticsCache(redisClient)

	// Services
	memberService := service.NewMemberService(workspaceRepo, memberRepo, roleRepo, registry, guard)
	authService := service.NewAuthService(userRepo, memberService, jwtManager)
	workspaceService := service.NewWorkspaceService(workspaceRepo, taskRepo, memberService, guard, analyticsCache)
	projectService := service.NewProjectService(projectRepo, memberService, guard, analyticsCache)
	taskService := service.NewTaskService(taskRepo, projectRepo, memberRepo, memberService, guard, analyticsCache)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	memberHandler := handler.NewMemberHandler(memberService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)

	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Route("/user", func(r chi.Router) {
				r.Get("/current", authHandler.Current)
				r.Post("/workspace", authHandler.SwitchWorkspace)
			})

			// Joining carries the invite code in the path
			r.Post("/members/workspaces/{inviteCode}/join", memberHandler.Join)

			r.Route("/workspaces", func(r chi.Router) {
				r.Get("/", workspaceHandler.List)
				r.Post("/", workspaceHandler.Create)

				r.Route("/{workspaceID}", func(r chi.Router) {
					r.Use(customMiddleware.WorkspaceContext)

					r.Get("/", workspaceHandler.Get)
					r.Patch("/", workspaceHandler.Update)
					r.Delete("/", workspaceHandler.Delete)
					r.Get("/analytics", workspaceHandler.Analytics)
					r.Post("/invite/reset", workspaceHandler.ResetInviteCode)

					r.Route("/members", func(r chi.Router) {
						r.Get("/", memberHandler.List)
						r.Put("/{memberUserID}/role", memberHandler.ChangeRole)
						r.Delete("/{memberUserID}", memberHandler.Remove)
					})

					r.Route("/projects", func(r chi.Router) {
						r.Get("/", projectHandler.List)
						r.Post("/", projectHandler.Create)

						r.Route("/{projectID}", func(r chi.Router) {
							r.Get("/", projectHandler.Get)
							r.Patch("/", projectHandler.Update)
							r.Delete("/", projectHandler.Delete)
							r.Get("/analytics", projectHandler.Analytics)
						})
					})

					r.Route("/tasks", func(r chi.Router) {
						r.Get("/", taskHandler.List)
						r.Post("/", taskHandler.Create)

						r.Route("/{taskID}", func(r chi.Router) {
							r.Get("/", taskHandler.Get)
							r.Patch("/", taskHandler.Update)
							r.Delete("/", taskHandler.Delete)
						})
					})
				})
			})
		})
	})

	return r
}
