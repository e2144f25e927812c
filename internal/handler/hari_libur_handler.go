package handler

import (
	"strconv"

	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HariLiburHandler struct {
	repo repository.HariLiburRepository
}

func NewHariLiburHandler(repo repository.HariLiburRepository) *HariLiburHandler {
	return &HariLiburHandler{repo: repo}
}

func (h *HariLiburHandler) GetAll(c *fiber.Ctx) error {
	data, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *HariLiburHandler) Create(c *fiber.Ctx) error {
	var req model.HariLibur
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Tanggal == "" || req.Nama == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal dan nama hari libur wajib diisi"})
	}

	if err := h.repo.Create(&req); err != nil {
		// Tanggal unique: dua hari libur di tanggal yang sama ditolak
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Gagal menyimpan: tanggal tersebut sudah terdaftar sebagai hari libur"})
	}

	return c.JSON(fiber.Map{"message": "Hari libur berhasil ditambahkan", "data": req})
}

func (h *HariLiburHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.HariLibur
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	libur, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	}

	libur.Tanggal = req.Tanggal
	libur.Nama = req.Nama
	libur.Keterangan = req.Keterangan

	if err := h.repo.Update(libur); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update data"})
	}
	return c.JSON(fiber.Map{"message": "Data berhasil diupdate", "data": libur})
}

func (h *HariLiburHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus data"})
	}
	return c.JSON(fiber.Map{"message": "Data berhasil dihapus"})
}

// GET /api/admin/hari-libur/cek?tanggal=YYYY-MM-DD
func (h *HariLiburHandler) Cek(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal")
	if tanggal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter tanggal wajib diisi"})
	}

	libur, err := h.repo.GetByTanggal(tanggal)
	if err != nil {
		return c.JSON(fiber.Map{"libur": false, "data": nil})
	}

	return c.JSON(fiber.Map{"libur": true, "data": libur})
}
