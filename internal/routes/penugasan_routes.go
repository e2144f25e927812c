package routes

import (
	"logbook-lapangan-backend/internal/handler"
	"logbook-lapangan-backend/internal/middleware"
	"logbook-lapangan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPenugasanRoutes(app *fiber.App, db *gorm.DB, validate *validator.Validate) {
	penugasanRepo := repository.NewPenugasanRepository(db)
	itemRepo := repository.NewItemPenugasanRepository(db)
	tugasRepo := repository.NewTugasRepository(db)

	hdl := handler.NewPenugasanHandler(penugasanRepo, itemRepo, tugasRepo, validate)
	itemHdl := handler.NewItemPenugasanHandler(itemRepo, penugasanRepo)

	// Rute petugas lapangan
	api := app.Group("/api", middleware.Auth)
	api.Get("/penugasan", hdl.GetMilikSaya)
	api.Get("/penugasan/:id", hdl.GetDetail)
	api.Post("/penugasan/:id/selesai", hdl.SubmitSemua)
	api.Post("/penugasan/:id/item", itemHdl.TambahSesi)
	api.Post("/item-penugasan/:id/mulai", itemHdl.Mulai)
	api.Post("/item-penugasan/:id/selesai", itemHdl.Selesai)
	api.Delete("/item-penugasan/:id", itemHdl.HapusSesi)

	// Rute admin
	admin := app.Group("/api/admin/penugasan", middleware.Auth, middleware.Role("admin"))
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Create)
	admin.Post("/batch", hdl.CreateBatch)
	admin.Put("/:id/status", hdl.UpdateStatus)
	admin.Delete("/:id", hdl.Delete)
}
