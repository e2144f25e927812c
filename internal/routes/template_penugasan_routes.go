package routes

import (
	"logbook-lapangan-backend/internal/handler"
	"logbook-lapangan-backend/internal/middleware"
	"logbook-lapangan-backend/internal/notify"
	"logbook-lapangan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTemplatePenugasanRoutes(app *fiber.App, db *gorm.DB, validate *validator.Validate, notifier notify.Notifier) {
	repo := repository.NewTemplatePenugasanRepository(db)
	penugasanRepo := repository.NewPenugasanRepository(db)
	hariLiburRepo := repository.NewHariLiburRepository(db)
	petugasRepo := repository.NewPetugasRepository(db)

	hdl := handler.NewTemplatePenugasanHandler(repo, penugasanRepo, hariLiburRepo, petugasRepo, notifier, validate)

	api := app.Group("/api/admin/template-penugasan", middleware.Auth, middleware.Role("admin"))

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)

	// Trigger generate: semua template aktif, atau satu template by id
	api.Post("/generate", hdl.GenerateSemua)
	api.Post("/:id/generate", hdl.Generate)
}
