package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tyforge/tyforge-backend/internal/config"
	"github.com/tyforge/tyforge-backend/internal/handlers"
	"github.com/tyforge/tyforge-backend/internal/middleware"
	"github.com/tyforge/tyforge-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	onboardingHandler *handlers.OnboardingHandler,
	catalogHandler *handlers.CatalogHandler,
	blackbookHandler *handlers.BlackbookHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Liveness, outside the rate-limited API surface.
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public catalog and static document
	api.Get("/plans", catalogHandler.Plans)
	api.Get("/services", catalogHandler.Services)
	api.Get("/blackbook/download", blackbookHandler.Download)

	// Auth — public, with a stricter limiter: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/signup", authLimiter, authHandler.Signup)
	api.Post("/login", authLimiter, authHandler.Login)

	// Everything below requires a valid token whose subject still resolves
	// to an existing account.
	jwtMw := middleware.JWTProtected(cfg)
	userMw := middleware.LoadUser(authService)

	api.Get("/me", jwtMw, userMw, authHandler.Me)
	api.Put("/update-profile", jwtMw, userMw, accountHandler.UpdateProfile)

	api.Get("/orders", jwtMw, userMw, accountHandler.Orders)
	api.Get("/projects", jwtMw, userMw, accountHandler.Projects)
	api.Get("/synopsis", jwtMw, userMw, accountHandler.Synopses)
	api.Post("/synopsis/upload", jwtMw, userMw, accountHandler.UploadSynopsis)
	api.Get("/meetings", jwtMw, userMw, accountHandler.Meetings)
	api.Post("/meetings/book", jwtMw, userMw, accountHandler.BookMeeting)

	api.Post("/select-plan", jwtMw, userMw, onboardingHandler.SelectPlan)
	api.Post("/create-project-idea", jwtMw, userMw, onboardingHandler.CreateProjectIdea)
	api.Post("/upload-synopsis/:project_id", jwtMw, userMw, onboardingHandler.UploadProjectSynopsis)
	api.Post("/request-admin-help", jwtMw, userMw, onboardingHandler.RequestAdminHelp)
	api.Get("/user/signup-status", jwtMw, userMw, onboardingHandler.SignupStatus)
	api.Post("/complete-onboarding", jwtMw, userMw, onboardingHandler.CompleteOnboarding)
}
