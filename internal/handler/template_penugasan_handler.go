package handler

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/notify"
	"logbook-lapangan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TemplatePenugasanHandler struct {
	repo          repository.TemplatePenugasanRepository
	penugasanRepo repository.PenugasanRepository
	hariLiburRepo repository.HariLiburRepository
	petugasRepo   repository.PetugasRepository
	notifier      notify.Notifier
	validate      *validator.Validate
}

func NewTemplatePenugasanHandler(
	repo repository.TemplatePenugasanRepository,
	penugasanRepo repository.PenugasanRepository,
	hariLiburRepo repository.HariLiburRepository,
	petugasRepo repository.PetugasRepository,
	notifier notify.Notifier,
	validate *validator.Validate,
) *TemplatePenugasanHandler {
	return &TemplatePenugasanHandler{
		repo:          repo,
		penugasanRepo: penugasanRepo,
		hariLiburRepo: hariLiburRepo,
		petugasRepo:   petugasRepo,
		notifier:      notifier,
		validate:      validate,
	}
}

type TemplateItemRequest struct {
	TugasID uint `json:"tugas_id" validate:"required"`
}

type TemplateRequest struct {
	Nama             string `json:"nama" validate:"required"`
	IsActive         *bool  `json:"is_active"`
	JenisPengulangan string `json:"jenis_pengulangan"`

	PetugasID     uint   `json:"petugas_id" validate:"required"`
	JamDeadline   string `json:"jam_deadline" validate:"required,datetime=15:04"`
	DeadlineBesok bool   `json:"deadline_besok"`
	Catatan       string `json:"catatan"`

	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusMeter *float64 `json:"radius_meter"`
	NamaLokasi  string   `json:"nama_lokasi"`

	Items []TemplateItemRequest `json:"items" validate:"dive"`
}

// buatItems menyalin field template ke tiap item. Salinan diambil saat
// create/edit; edit template berikutnya tidak menyentuh penugasan yang
// sudah ter-generate dari salinan lama.
func buatItems(req *TemplateRequest) []model.TemplateItemPenugasan {
	items := make([]model.TemplateItemPenugasan, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.TemplateItemPenugasan{
			TugasID:       it.TugasID,
			PetugasID:     req.PetugasID,
			JamDeadline:   req.JamDeadline,
			DeadlineBesok: req.DeadlineBesok,
			Catatan:       req.Catatan,
			Latitude:      req.Latitude,
			Longitude:     req.Longitude,
			RadiusMeter:   req.RadiusMeter,
			NamaLokasi:    req.NamaLokasi,
		})
	}
	return items
}

// POST /api/admin/template-penugasan
func (h *TemplatePenugasanHandler) Create(c *fiber.Ctx) error {
	var req TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, petugas, dan jam deadline (HH:MM) wajib diisi"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	jenis := req.JenisPengulangan
	if jenis == "" {
		jenis = "HARIAN"
	}

	template := model.TemplatePenugasanHarian{
		Nama:             req.Nama,
		IsActive:         isActive,
		JenisPengulangan: jenis,
		PetugasID:        req.PetugasID,
		JamDeadline:      req.JamDeadline,
		DeadlineBesok:    req.DeadlineBesok,
		Catatan:          req.Catatan,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		RadiusMeter:      req.RadiusMeter,
		NamaLokasi:       req.NamaLokasi,
		Items:            buatItems(&req),
	}

	if err := h.repo.Create(&template); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat template"})
	}

	return c.JSON(fiber.Map{"message": "Template berhasil dibuat", "data": template})
}

// PUT /api/admin/template-penugasan/:id — semua item diganti atomik
func (h *TemplatePenugasanHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, petugas, dan jam deadline (HH:MM) wajib diisi"})
	}

	template, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template tidak ditemukan"})
	}

	template.Nama = req.Nama
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if req.JenisPengulangan != "" {
		template.JenisPengulangan = req.JenisPengulangan
	}
	template.PetugasID = req.PetugasID
	template.JamDeadline = req.JamDeadline
	template.DeadlineBesok = req.DeadlineBesok
	template.Catatan = req.Catatan
	template.Latitude = req.Latitude
	template.Longitude = req.Longitude
	template.RadiusMeter = req.RadiusMeter
	template.NamaLokasi = req.NamaLokasi

	if err := h.repo.UpdateDenganItems(template, buatItems(&req)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah template"})
	}

	return c.JSON(fiber.Map{"message": "Template berhasil diubah", "data": template})
}

// GET /api/admin/template-penugasan
func (h *TemplatePenugasanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data template"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// GET /api/admin/template-penugasan/:id
func (h *TemplatePenugasanHandler) GetDetail(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	template, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": template})
}

// DELETE /api/admin/template-penugasan/:id
func (h *TemplatePenugasanHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	template, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template tidak ditemukan"})
	}
	if err := h.repo.Delete(template); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus template"})
	}
	return c.JSON(fiber.Map{"message": "Template berhasil dihapus"})
}

type GenerateRequest struct {
	Tanggal          string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	SkipHolidayCheck bool   `json:"skip_holiday_check"`
}

// POST /api/admin/template-penugasan/:id/generate — satu template
func (h *TemplatePenugasanHandler) Generate(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal wajib diisi (format YYYY-MM-DD)"})
	}

	template, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template tidak ditemukan"})
	}
	// Template non-aktif tidak pernah di-generate, sekalipun ditarget langsung
	if !template.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Template tidak aktif"})
	}

	return h.generate(c, []model.TemplatePenugasanHarian{*template}, &req)
}

// POST /api/admin/template-penugasan/generate — semua template aktif
func (h *TemplatePenugasanHandler) GenerateSemua(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal wajib diisi (format YYYY-MM-DD)"})
	}

	templates, err := h.repo.GetAllActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil template"})
	}

	return h.generate(c, templates, &req)
}

func (h *TemplatePenugasanHandler) generate(c *fiber.Ctx, templates []model.TemplatePenugasanHarian, req *GenerateRequest) error {
	adminID := uint(c.Locals("user_id").(float64))

	// 1. Cek hari libur (soft block, bisa dilewati dengan skip_holiday_check)
	if !req.SkipHolidayCheck {
		libur, err := h.hariLiburRepo.GetByTanggal(req.Tanggal)
		if err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   fmt.Sprintf("Tanggal %s adalah hari libur: %s. Kirim ulang dengan skip_holiday_check untuk tetap generate.", req.Tanggal, libur.Nama),
				"holiday": libur.Nama,
			})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengecek hari libur"})
		}
	}

	tglDasar, err := time.ParseInLocation("2006-01-02", req.Tanggal, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal tidak valid (YYYY-MM-DD)"})
	}

	// 2. Expand: satu penugasan + satu item per template item
	var listPenugasan []model.Penugasan
	jumlahTemplate := 0

	for _, template := range templates {
		// Template tanpa item dilewati diam-diam dan tidak dihitung
		if len(template.Items) == 0 {
			continue
		}

		for _, item := range template.Items {
			jam, err := time.Parse("15:04", item.JamDeadline)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Jam deadline tidak valid pada template %s", template.Nama),
				})
			}

			deadline := time.Date(tglDasar.Year(), tglDasar.Month(), tglDasar.Day(), jam.Hour(), jam.Minute(), 0, 0, time.Local)
			// Shift malam: deadline jatuh di hari berikutnya
			if item.DeadlineBesok {
				deadline = deadline.AddDate(0, 0, 1)
			}

			listPenugasan = append(listPenugasan, model.Penugasan{
				TugasID:      item.TugasID,
				PetugasID:    item.PetugasID,
				DibuatOlehID: adminID,
				Status:       model.StatusPending,
				Deadline:     &deadline,
				Catatan:      item.Catatan,
				Latitude:     item.Latitude,
				Longitude:    item.Longitude,
				RadiusMeter:  item.RadiusMeter,
				NamaLokasi:   item.NamaLokasi,
				Items: []model.ItemPenugasan{
					{Nama: item.Tugas.Nama, Status: model.StatusPending},
				},
			})
		}
		jumlahTemplate++
	}

	// 3. Satu trigger = satu transaksi: semua tersimpan atau tidak sama sekali
	if len(listPenugasan) > 0 {
		if err := h.penugasanRepo.CreateMany(listPenugasan); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal generate penugasan"})
		}
	}

	h.kirimNotifikasi(listPenugasan, req.Tanggal)

	return c.JSON(fiber.Map{
		"message":          "Generate penugasan berhasil",
		"jumlah_penugasan": len(listPenugasan),
		"jumlah_template":  jumlahTemplate,
	})
}

// kirimNotifikasi mengabari tiap petugas yang kebagian penugasan.
// Best-effort: kegagalan kirim email hanya dicatat di log.
func (h *TemplatePenugasanHandler) kirimNotifikasi(listPenugasan []model.Penugasan, tanggal string) {
	if h.notifier == nil {
		return
	}

	perPetugas := make(map[uint]int)
	for _, p := range listPenugasan {
		perPetugas[p.PetugasID]++
	}

	for petugasID, jumlah := range perPetugas {
		petugas, err := h.petugasRepo.FindByID(petugasID)
		if err != nil {
			continue
		}
		if err := h.notifier.KirimPenugasanBaru(petugas.Email, petugas.Nama, tanggal, jumlah); err != nil {
			log.Printf("Gagal mengirim notifikasi ke %s: %v", petugas.Email, err)
		}
	}
}
