package routes

import (
	"time"

	"github.com/fitflow-app/fitflow-server/internal/config"
	"github.com/fitflow-app/fitflow-server/internal/handlers"
	"github.com/fitflow-app/fitflow-server/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	workoutHandler *handlers.WorkoutHandler,
	settingsHandler *handlers.SettingsHandler,
	syncHandler *handlers.SyncHandler,
	aiHandler *handlers.AiHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Exercise library
	api.Get("/exercises", workoutHandler.ListExercises)
	api.Get("/exercises/common", workoutHandler.CommonExercises)
	api.Get("/exercises/favorites", workoutHandler.FavoriteExercises)
	api.Post("/exercises", workoutHandler.CreateExercise)
	api.Put("/exercises/:id", workoutHandler.UpdateExercise)
	api.Delete("/exercises/:id", workoutHandler.DeleteExercise)
	api.Post("/exercises/:id/favorite", workoutHandler.ToggleFavorite)

	// Templates
	api.Get("/templates", workoutHandler.ListTemplates)
	api.Get("/templates/:id", workoutHandler.GetTemplate)
	api.Post("/templates", workoutHandler.CreateTemplate)
	api.Put("/templates/:id", workoutHandler.UpdateTemplate)
	api.Delete("/templates/:id", workoutHandler.DeleteTemplate)

	// Daily workouts & set tracking
	api.Get("/workouts", workoutHandler.ListWorkouts)
	api.Get("/workouts/today", workoutHandler.TodayWorkout)
	api.Get("/workouts/:date", workoutHandler.GetWorkout)
	api.Put("/workouts/:date", workoutHandler.PutWorkout)
	api.Post("/workouts/assign/exercise", workoutHandler.AssignExercise)
	api.Post("/workouts/assign/template", workoutHandler.AssignTemplate)
	api.Post("/workouts/:date/items/:itemId/sets", workoutHandler.AddSet)
	api.Post("/workouts/:date/items/:itemId/sets/:setId/toggle", workoutHandler.ToggleSet)
	api.Put("/workouts/:date/items/:itemId/sets/:setId", workoutHandler.UpdateSetReps)
	api.Delete("/workouts/:date/items/:itemId/sets/:setId", workoutHandler.RemoveSet)
	api.Put("/workouts/:date/items/:itemId/notes", workoutHandler.UpdateNotes)
	api.Delete("/workouts/:date/items/:itemId", workoutHandler.RemoveItem)

	// Per-exercise set/rep preferences
	api.Get("/preferences", workoutHandler.Preferences)
	api.Put("/preferences/:exerciseId", workoutHandler.UpdatePreference)

	// Settings
	api.Get("/settings/ai", settingsHandler.GetAiSettings)
	api.Put("/settings/ai", settingsHandler.UpdateAiSettings)
	api.Get("/settings/theme", settingsHandler.GetTheme)
	api.Put("/settings/theme", settingsHandler.UpdateTheme)

	// Account-scoped mirror sync (JWT required)
	api.Post("/sync/push", middleware.JWTProtected(cfg), syncHandler.Push)
	api.Post("/sync/pull", middleware.JWTProtected(cfg), syncHandler.Pull)

	// AI draft generation
	api.Post("/ai/draft", middleware.JWTProtected(cfg), aiHandler.Draft)
}
