package handler

import (
	"fmt"
	"strconv"
	"time"

	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type PenugasanHandler struct {
	repo      repository.PenugasanRepository
	itemRepo  repository.ItemPenugasanRepository
	tugasRepo repository.TugasRepository
	validate  *validator.Validate

	now func() time.Time
}

func NewPenugasanHandler(repo repository.PenugasanRepository, itemRepo repository.ItemPenugasanRepository, tugasRepo repository.TugasRepository, validate *validator.Validate) *PenugasanHandler {
	return &PenugasanHandler{
		repo:      repo,
		itemRepo:  itemRepo,
		tugasRepo: tugasRepo,
		validate:  validate,
		now:       time.Now,
	}
}

type CreatePenugasanRequest struct {
	TugasID   uint `json:"tugas_id" validate:"required"`
	PetugasID uint `json:"petugas_id" validate:"required"`

	Deadline string `json:"deadline"` // Format: YYYY-MM-DD HH:MM (opsional)
	Catatan  string `json:"catatan"`

	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusMeter *float64 `json:"radius_meter"`
	NamaLokasi  string   `json:"nama_lokasi"`
}

func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /api/admin/penugasan
func (h *PenugasanHandler) Create(c *fiber.Ctx) error {
	adminID := uint(c.Locals("user_id").(float64))

	var req CreatePenugasanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tugas dan petugas wajib dipilih"})
	}

	tugas, err := h.tugasRepo.GetByID(req.TugasID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format deadline tidak valid (YYYY-MM-DD HH:MM)"})
	}

	penugasan := model.Penugasan{
		TugasID:      req.TugasID,
		PetugasID:    req.PetugasID,
		DibuatOlehID: adminID,
		Status:       model.StatusPending,
		Deadline:     deadline,
		Catatan:      req.Catatan,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeter:  req.RadiusMeter,
		NamaLokasi:   req.NamaLokasi,
		// Item bawaan: satu sesi pertama dengan nama tugasnya
		Items: []model.ItemPenugasan{
			{Nama: tugas.Nama, Status: model.StatusPending},
		},
	}

	if err := h.repo.Create(&penugasan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat penugasan"})
	}

	return c.JSON(fiber.Map{"message": "Penugasan berhasil dibuat", "data": penugasan})
}

type CreatePenugasanBatchRequest struct {
	TugasID    uint   `json:"tugas_id" validate:"required"`
	PetugasIDs []uint `json:"petugas_ids" validate:"required,min=1"`

	Deadline string `json:"deadline"`
	Catatan  string `json:"catatan"`

	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusMeter *float64 `json:"radius_meter"`
	NamaLokasi  string   `json:"nama_lokasi"`
}

// POST /api/admin/penugasan/batch — satu tugas untuk banyak petugas sekaligus
func (h *PenugasanHandler) CreateBatch(c *fiber.Ctx) error {
	adminID := uint(c.Locals("user_id").(float64))

	var req CreatePenugasanBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tugas dan minimal satu petugas wajib dipilih"})
	}

	tugas, err := h.tugasRepo.GetByID(req.TugasID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format deadline tidak valid (YYYY-MM-DD HH:MM)"})
	}

	var list []model.Penugasan
	for _, petugasID := range req.PetugasIDs {
		list = append(list, model.Penugasan{
			TugasID:      req.TugasID,
			PetugasID:    petugasID,
			DibuatOlehID: adminID,
			Status:       model.StatusPending,
			Deadline:     deadline,
			Catatan:      req.Catatan,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			RadiusMeter:  req.RadiusMeter,
			NamaLokasi:   req.NamaLokasi,
			Items: []model.ItemPenugasan{
				{Nama: tugas.Nama, Status: model.StatusPending},
			},
		})
	}

	if err := h.repo.CreateMany(list); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat penugasan"})
	}

	return c.JSON(fiber.Map{
		"message":          "Penugasan batch berhasil dibuat",
		"jumlah_penugasan": len(list),
	})
}

// GET /api/penugasan — daftar penugasan milik petugas yang login
func (h *PenugasanHandler) GetMilikSaya(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	list, err := h.repo.GetByPetugas(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data penugasan"})
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil penugasan", "data": list})
}

// GET /api/penugasan/:id
func (h *PenugasanHandler) GetDetail(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	role, _ := c.Locals("role").(string)

	id, _ := strconv.Atoi(c.Params("id"))
	penugasan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penugasan tidak ditemukan"})
	}

	if role != "admin" && penugasan.PetugasID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: penugasan ini bukan milik Anda"})
	}

	return c.JSON(fiber.Map{"data": penugasan})
}

// GET /api/admin/penugasan
func (h *PenugasanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data penugasan"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// POST /api/penugasan/:id/selesai — satu-satunya jalur petugas menyelesaikan
// penugasan; seluruh item harus sudah selesai.
func (h *PenugasanHandler) SubmitSemua(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	id, _ := strconv.Atoi(c.Params("id"))
	penugasan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penugasan tidak ditemukan"})
	}

	if penugasan.PetugasID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: penugasan ini bukan milik Anda"})
	}
	if penugasan.Status == model.StatusSelesai {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Penugasan sudah diselesaikan"})
	}

	belumSelesai, err := h.itemRepo.CountBelumSelesai(penugasan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengecek item penugasan"})
	}
	if belumSelesai > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":         fmt.Sprintf("Masih ada %d item yang belum selesai", belumSelesai),
			"belum_selesai": belumSelesai,
		})
	}

	now := h.now()
	penugasan.Status = model.StatusSelesai
	penugasan.WaktuSelesai = &now

	if err := h.repo.Update(penugasan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan penugasan"})
	}

	return c.JSON(fiber.Map{"message": "Penugasan berhasil diselesaikan", "data": penugasan})
}

type UpdateStatusRequest struct {
	Status model.StatusPenugasan `json:"status" validate:"required,oneof=PENDING DIKERJAKAN SELESAI"`
}

// PUT /api/admin/penugasan/:id/status — override admin, tanpa validasi
// kelengkapan item (jalur darurat yang disengaja).
func (h *PenugasanHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status harus PENDING, DIKERJAKAN, atau SELESAI"})
	}

	penugasan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penugasan tidak ditemukan"})
	}

	penugasan.Status = req.Status
	if req.Status == model.StatusSelesai {
		now := h.now()
		penugasan.WaktuSelesai = &now
	}

	if err := h.repo.Update(penugasan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status"})
	}

	return c.JSON(fiber.Map{"message": "Status penugasan berhasil diubah", "data": penugasan})
}

// DELETE /api/admin/penugasan/:id
func (h *PenugasanHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	penugasan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penugasan tidak ditemukan"})
	}

	if penugasan.Status == model.StatusDikerjakan {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Penugasan sedang dikerjakan, tidak bisa dihapus"})
	}

	if err := h.repo.Delete(penugasan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus penugasan"})
	}

	return c.JSON(fiber.Map{"message": "Penugasan beserta itemnya berhasil dihapus"})
}
