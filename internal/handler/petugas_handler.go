package handler

import (
	"time"

	"logbook-lapangan-backend/config"
	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type PetugasHandler struct {
	repo repository.PetugasRepository
}

func NewPetugasHandler(repo repository.PetugasRepository) *PetugasHandler {
	return &PetugasHandler{repo: repo}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *PetugasHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// 1. Cari petugas by username
	petugas, err := h.repo.FindByUsername(req.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Username atau password salah"})
	}
	if !petugas.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun tidak aktif. Hubungi admin."})
	}

	// 2. Cek password
	if err := bcrypt.CompareHashAndPassword([]byte(petugas.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Username atau password salah"})
	}

	// 3. Generate token JWT
	claims := jwt.MapClaims{
		"user_id":  petugas.ID,
		"username": petugas.Username,
		"role":     petugas.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   tokenString,
		"data": fiber.Map{
			"username": petugas.Username,
			"nama":     petugas.Nama,
			"role":     petugas.Role,
		},
	})
}

func (h *PetugasHandler) GetProfile(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	petugas, err := h.repo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil profil", "data": petugas})
}

type CreatePetugasRequest struct {
	Nama     string `json:"nama"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	Role     string `json:"role"`
}

// POST /api/admin/petugas
func (h *PetugasHandler) Create(c *fiber.Ctx) error {
	var req CreatePetugasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username dan password wajib diisi"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
	}

	role := req.Role
	if role == "" {
		role = "petugas"
	}

	petugas := model.Petugas{
		Nama:     req.Nama,
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		NoHP:     req.NoHP,
		Role:     role,
		IsActive: true,
	}

	if err := h.repo.Create(&petugas); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username sudah digunakan"})
	}

	return c.JSON(fiber.Map{"message": "Petugas berhasil dibuat", "data": petugas})
}

// GET /api/admin/petugas
func (h *PetugasHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data petugas"})
	}
	return c.JSON(fiber.Map{"data": list})
}
