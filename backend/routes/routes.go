package routes

import (
	"github.com/gofiber/fiber/v2"

	"lumina/backend/config"
	"lumina/backend/controllers"
	"lumina/backend/core"
	"lumina/backend/middleware"
)

func SetupRoutes(app *fiber.App, state *core.State, cfg *config.Config) {
	sessionMiddleware := middleware.SessionMiddleware(cfg)

	// Session routes
	sessionController := controllers.NewSessionController(state, cfg)
	app.Post("/api/session/login", sessionController.Login)
	app.Get("/api/session", sessionController.Session)
	app.Post("/api/session/logout", sessionMiddleware, sessionController.Logout)

	// Syllabus routes
	syllabusController := controllers.NewSyllabusController(state, cfg)
	syllabus := app.Group("/api/syllabus", sessionMiddleware)
	syllabus.Get("/", syllabusController.GetSyllabus)
	syllabus.Post("/", syllabusController.Upload)

	// Progress routes
	progressController := controllers.NewProgressController(state, cfg)
	progress := app.Group("/api/progress", sessionMiddleware)
	progress.Get("/", progressController.GetProgress)
	progress.Patch("/", progressController.UpdateProgress)

	// Navigation routes
	navigationController := controllers.NewNavigationController(state, cfg)
	app.Get("/api/state", sessionMiddleware, navigationController.GetState)
	view := app.Group("/api/view", sessionMiddleware)
	view.Get("/", navigationController.GetView)
	view.Put("/", navigationController.SetView)
	view.Post("/topic", navigationController.TopicAction)
	view.Delete("/topic", navigationController.ClearTopic)
}
