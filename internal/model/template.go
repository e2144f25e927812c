package model

import "gorm.io/gorm"

// TemplatePenugasanHarian adalah resep penugasan berulang. Template tidak
// berjalan otomatis; admin men-trigger generate untuk satu tanggal tertentu.
type TemplatePenugasanHarian struct {
	gorm.Model
	Nama     string `json:"nama" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Informasi saja (HARIAN/MINGGUAN/BULANAN), tidak menjadwalkan otomatis
	JenisPengulangan string `json:"jenis_pengulangan" gorm:"default:HARIAN"`

	PetugasID     uint   `json:"petugas_id"`
	JamDeadline   string `json:"jam_deadline"` // Format HH:MM
	DeadlineBesok bool   `json:"deadline_besok"`
	Catatan       string `json:"catatan"`

	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusMeter *float64 `json:"radius_meter"`
	NamaLokasi  string   `json:"nama_lokasi"`

	// Relasi
	Items []TemplateItemPenugasan `json:"items" gorm:"foreignKey:TemplateID"`
}

// TemplateItemPenugasan menyalin field template saat dibuat/diedit. Edit
// template setelahnya tidak mengubah penugasan yang sudah ter-generate.
type TemplateItemPenugasan struct {
	gorm.Model
	TemplateID uint `json:"template_id"`
	TugasID    uint `json:"tugas_id"`
	PetugasID  uint `json:"petugas_id"`

	JamDeadline   string `json:"jam_deadline"`
	DeadlineBesok bool   `json:"deadline_besok"`
	Catatan       string `json:"catatan"`

	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusMeter *float64 `json:"radius_meter"`
	NamaLokasi  string   `json:"nama_lokasi"`

	// Relasi
	Tugas Tugas `json:"tugas" gorm:"foreignKey:TugasID"`
}
