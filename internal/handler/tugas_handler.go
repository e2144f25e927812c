package handler

import (
	"strconv"

	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type TugasHandler struct {
	repo repository.TugasRepository
}

func NewTugasHandler(repo repository.TugasRepository) *TugasHandler {
	return &TugasHandler{repo: repo}
}

func (h *TugasHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data tugas"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *TugasHandler) GetDetail(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	tugas, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": tugas})
}

func (h *TugasHandler) Create(c *fiber.Ctx) error {
	var tugas model.Tugas
	if err := c.BodyParser(&tugas); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if tugas.Nama == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama tugas wajib diisi"})
	}

	if err := h.repo.Create(&tugas); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat tugas"})
	}
	return c.JSON(fiber.Map{"message": "Tugas berhasil dibuat", "data": tugas})
}

func (h *TugasHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Tugas
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	tugas, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}

	tugas.Nama = req.Nama
	tugas.Deskripsi = req.Deskripsi
	tugas.WajibFoto = req.WajibFoto
	tugas.WajibCatatan = req.WajibCatatan
	tugas.WajibLampiran = req.WajibLampiran

	if err := h.repo.Update(tugas); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update tugas"})
	}
	return c.JSON(fiber.Map{"message": "Tugas berhasil diupdate", "data": tugas})
}

func (h *TugasHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus tugas"})
	}
	return c.JSON(fiber.Map{"message": "Tugas berhasil dihapus"})
}
