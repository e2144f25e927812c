package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"logbook-lapangan-backend/internal/geofence"
	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemPenugasanHandler struct {
	itemRepo      repository.ItemPenugasanRepository
	penugasanRepo repository.PenugasanRepository

	now       func() time.Time // injectable untuk test
	uploadDir string
}

func NewItemPenugasanHandler(itemRepo repository.ItemPenugasanRepository, penugasanRepo repository.PenugasanRepository) *ItemPenugasanHandler {
	return &ItemPenugasanHandler{
		itemRepo:      itemRepo,
		penugasanRepo: penugasanRepo,
		now:           time.Now,
		uploadDir:     "uploads/bukti",
	}
}

type KoordinatRequest struct {
	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
	Ringkasan string   `json:"ringkasan" form:"ringkasan"`
}

// muatItemDanPenugasan memuat item + penugasan induknya dan memastikan
// request datang dari petugas pemilik penugasan.
func (h *ItemPenugasanHandler) muatItemDanPenugasan(c *fiber.Ctx) (*model.ItemPenugasan, *model.Penugasan, error) {
	userID := uint(c.Locals("user_id").(float64))

	itemID, _ := strconv.Atoi(c.Params("id"))
	item, err := h.itemRepo.GetByID(uint(itemID))
	if err != nil {
		return nil, nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item penugasan tidak ditemukan"})
	}

	penugasan, err := h.penugasanRepo.GetByID(item.PenugasanID)
	if err != nil {
		return nil, nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penugasan tidak ditemukan"})
	}

	if penugasan.PetugasID != userID {
		return nil, nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: penugasan ini bukan milik Anda"})
	}

	return item, penugasan, nil
}

// validasiGeofence mengecek koordinat terhadap area kerja penugasan.
// Dipanggil baik saat mulai maupun selesai (petugas bisa saja keluar area
// di tengah pengerjaan).
func (h *ItemPenugasanHandler) validasiGeofence(c *fiber.Ctx, penugasan *model.Penugasan, req *KoordinatRequest) error {
	if !penugasan.PunyaGeofence() {
		return nil
	}

	if req.Latitude == nil || req.Longitude == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Lokasi wajib dikirim: penugasan ini memiliki area kerja"})
	}

	jarak := geofence.Distance(*req.Latitude, *req.Longitude, *penugasan.Latitude, *penugasan.Longitude)
	if !geofence.WithinRadius(jarak, *penugasan.RadiusMeter) {
		pesan := fmt.Sprintf("Anda berada di luar area kerja (jarak %.0f m, radius yang diizinkan %.0f m)", jarak, *penugasan.RadiusMeter)
		if penugasan.NamaLokasi != "" {
			pesan = fmt.Sprintf("Anda berada di luar area %s (jarak %.0f m, radius yang diizinkan %.0f m)", penugasan.NamaLokasi, jarak, *penugasan.RadiusMeter)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  pesan,
			"jarak":  jarak,
			"radius": *penugasan.RadiusMeter,
		})
	}

	return nil
}

func (h *ItemPenugasanHandler) simpanBukti(c *fiber.Ctx, file *multipart.FileHeader, itemID uint, tahap string) (string, error) {
	if _, err := os.Stat(h.uploadDir); os.IsNotExist(err) {
		os.MkdirAll(h.uploadDir, 0755)
	}

	filename := fmt.Sprintf("%d_%s_%s%s", itemID, tahap, uuid.New().String(), filepath.Ext(file.Filename))
	path := fmt.Sprintf("%s/%s", h.uploadDir, filename)

	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// POST /api/item-penugasan/:id/mulai
func (h *ItemPenugasanHandler) Mulai(c *fiber.Ctx) error {
	item, penugasan, errResp := h.muatItemDanPenugasan(c)
	if errResp != nil {
		return errResp
	}

	// Penugasan yang sudah SELESAI terkunci, itemnya tidak boleh disentuh
	if penugasan.Status == model.StatusSelesai {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Penugasan sudah diselesaikan, item tidak bisa dimulai"})
	}

	// 1. Item hanya boleh dimulai sekali
	if item.WaktuMulai != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item penugasan sudah dimulai"})
	}

	var req KoordinatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// 2. Foto bukti sebelum, wajib sesuai pengaturan tugas
	foto, errFoto := c.FormFile("foto")
	if penugasan.Tugas.WajibFoto && errFoto != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto bukti sebelum bekerja wajib dilampirkan"})
	}

	// 3. Validasi area kerja
	if err := h.validasiGeofence(c, penugasan, &req); err != nil {
		return err
	}

	// 4. Simpan foto setelah semua validasi lolos
	if errFoto == nil {
		path, err := h.simpanBukti(c, foto, item.ID, "sebelum")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan foto bukti"})
		}
		item.FotoSebelum = path
	}

	now := h.now()
	item.WaktuMulai = &now
	item.Status = model.StatusDikerjakan
	item.LatSebelum = req.Latitude
	item.LonSebelum = req.Longitude

	// 5. Item pertama yang berjalan ikut menjalankan penugasan induk
	var induk *model.Penugasan
	if penugasan.Status == model.StatusPending {
		penugasan.Status = model.StatusDikerjakan
		penugasan.WaktuMulai = &now
		induk = penugasan
	}

	if err := h.itemRepo.SimpanMulai(item, induk); err != nil {
		// Foto yang terlanjur tersimpan ikut dibuang agar tidak yatim
		if item.FotoSebelum != "" {
			os.Remove(item.FotoSebelum)
		}
		if errors.Is(err, repository.ErrSudahDimulai) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item penugasan sudah dimulai"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data mulai"})
	}

	return c.JSON(fiber.Map{
		"message":          "Item penugasan dimulai",
		"data":             item,
		"status_penugasan": penugasan.Status,
	})
}

// POST /api/item-penugasan/:id/selesai
func (h *ItemPenugasanHandler) Selesai(c *fiber.Ctx) error {
	item, penugasan, errResp := h.muatItemDanPenugasan(c)
	if errResp != nil {
		return errResp
	}

	// Penugasan yang sudah SELESAI terkunci, itemnya tidak boleh disentuh
	if penugasan.Status == model.StatusSelesai {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Penugasan sudah diselesaikan, item tidak bisa diubah"})
	}

	if item.WaktuMulai == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item penugasan belum dimulai"})
	}
	if item.WaktuSelesai != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item penugasan sudah diselesaikan"})
	}

	var req KoordinatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Syarat bukti per tugas: foto sesudah, ringkasan, lampiran
	foto, errFoto := c.FormFile("foto")
	if penugasan.Tugas.WajibFoto && errFoto != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto bukti sesudah bekerja wajib dilampirkan"})
	}
	if penugasan.Tugas.WajibCatatan && req.Ringkasan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Ringkasan hasil kerja wajib diisi"})
	}
	lampiran, errLampiran := c.FormFile("lampiran")
	if penugasan.Tugas.WajibLampiran && errLampiran != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File lampiran wajib dilampirkan"})
	}

	// Validasi ulang area kerja: petugas bisa keluar area selama bekerja
	if err := h.validasiGeofence(c, penugasan, &req); err != nil {
		return err
	}

	if errFoto == nil {
		path, err := h.simpanBukti(c, foto, item.ID, "sesudah")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan foto bukti"})
		}
		item.FotoSesudah = path
	}
	if errLampiran == nil {
		path, err := h.simpanBukti(c, lampiran, item.ID, "lampiran")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan lampiran"})
		}
		item.Lampiran = path
	}

	now := h.now()
	durasi := int64(now.Sub(*item.WaktuMulai) / time.Second)
	// Durasi tidak boleh negatif walau ada pergeseran jam
	if durasi < 0 {
		durasi = -durasi
	}

	item.WaktuSelesai = &now
	item.DurasiDetik = durasi
	item.Status = model.StatusSelesai
	item.LatSesudah = req.Latitude
	item.LonSesudah = req.Longitude
	item.Ringkasan = req.Ringkasan

	// Penugasan induk TIDAK otomatis selesai; petugas harus submit sendiri
	if err := h.itemRepo.SimpanSelesai(item); err != nil {
		for _, path := range []string{item.FotoSesudah, item.Lampiran} {
			if path != "" {
				os.Remove(path)
			}
		}
		if errors.Is(err, repository.ErrBelumDimulai) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item penugasan belum dimulai"})
		}
		if errors.Is(err, repository.ErrSudahSelesai) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item penugasan sudah diselesaikan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data selesai"})
	}

	return c.JSON(fiber.Map{
		"message":      "Item penugasan diselesaikan",
		"data":         item,
		"durasi_detik": durasi,
	})
}

// POST /api/penugasan/:id/item
func (h *ItemPenugasanHandler) TambahSesi(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	penugasanID, _ := strconv.Atoi(c.Params("id"))
	penugasan, err := h.penugasanRepo.GetByID(uint(penugasanID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penugasan tidak ditemukan"})
	}

	if penugasan.PetugasID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: penugasan ini bukan milik Anda"})
	}
	if penugasan.Status == model.StatusSelesai {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Penugasan sudah diselesaikan, tidak bisa menambah sesi"})
	}

	jumlah, err := h.itemRepo.CountByPenugasan(penugasan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung sesi"})
	}

	item := model.ItemPenugasan{
		PenugasanID: penugasan.ID,
		Nama:        fmt.Sprintf("%s #%d", penugasan.Tugas.Nama, jumlah+1),
		Status:      model.StatusPending,
	}

	if err := h.itemRepo.Create(&item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah sesi"})
	}

	return c.JSON(fiber.Map{"message": "Sesi baru ditambahkan", "data": item})
}

// DELETE /api/item-penugasan/:id
func (h *ItemPenugasanHandler) HapusSesi(c *fiber.Ctx) error {
	item, penugasan, errResp := h.muatItemDanPenugasan(c)
	if errResp != nil {
		return errResp
	}

	if penugasan.Status == model.StatusSelesai {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Penugasan sudah diselesaikan, sesi tidak bisa dihapus"})
	}

	// Jika sesi yang sedang berjalan dihapus dan tidak ada sesi lain yang
	// berjalan, penugasan kembali PENDING dan waktu mulai dikosongkan.
	var induk *model.Penugasan
	if item.Status == model.StatusDikerjakan {
		lain, err := h.itemRepo.CountDikerjakanSelain(penugasan.ID, item.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengecek sesi lain"})
		}
		if lain == 0 {
			penugasan.Status = model.StatusPending
			penugasan.WaktuMulai = nil
			induk = penugasan
		}
	}

	if err := h.itemRepo.Delete(item, induk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus sesi"})
	}

	// Artefak bukti dibuang setelah baris di DB hilang; kegagalan hapus
	// file tidak menggagalkan operasi
	for _, path := range []string{item.FotoSebelum, item.FotoSesudah, item.Lampiran} {
		if path != "" {
			os.Remove(path)
		}
	}

	return c.JSON(fiber.Map{
		"message":          "Sesi berhasil dihapus",
		"status_penugasan": penugasan.Status,
	})
}
