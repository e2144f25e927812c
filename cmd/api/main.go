package main

import (
	"fmt"

	"logbook-lapangan-backend/config"
	"logbook-lapangan-backend/internal/notify"
	"logbook-lapangan-backend/internal/routes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve Static Files (foto bukti & lampiran)
	app.Static("/uploads", "./uploads")

	validate := validator.New()
	notifier := notify.NewMailNotifier()

	routes.SetupPetugasRoutes(app, config.DB)
	routes.SetupTugasRoutes(app, config.DB)
	routes.SetupHariLiburRoutes(app, config.DB)
	routes.SetupPenugasanRoutes(app, config.DB, validate)
	routes.SetupTemplatePenugasanRoutes(app, config.DB, validate, notifier)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
