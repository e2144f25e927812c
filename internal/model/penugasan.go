package model

import (
	"time"

	"gorm.io/gorm"
)

type StatusPenugasan string

const (
	StatusPending    StatusPenugasan = "PENDING"
	StatusDikerjakan StatusPenugasan = "DIKERJAKAN"
	StatusSelesai    StatusPenugasan = "SELESAI"
)

type Penugasan struct {
	gorm.Model
	TugasID      uint            `json:"tugas_id"`
	PetugasID    uint            `json:"petugas_id"`
	DibuatOlehID uint            `json:"dibuat_oleh_id"`
	Status       StatusPenugasan `json:"status" gorm:"type:varchar(20);default:PENDING"`
	Deadline     *time.Time      `json:"deadline"`
	Catatan      string          `json:"catatan"`

	// Geofence: area kerja yang diizinkan. Aktif jika ketiganya terisi.
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusMeter *float64 `json:"radius_meter"`
	NamaLokasi  string   `json:"nama_lokasi"`

	WaktuMulai   *time.Time `json:"waktu_mulai"`
	WaktuSelesai *time.Time `json:"waktu_selesai"`

	// Relasi
	Tugas   Tugas           `json:"tugas" gorm:"foreignKey:TugasID"`
	Petugas Petugas         `json:"petugas" gorm:"foreignKey:PetugasID"`
	Items   []ItemPenugasan `json:"items" gorm:"foreignKey:PenugasanID"`
}

// PunyaGeofence: validasi lokasi hanya berlaku jika titik dan radius lengkap.
func (p *Penugasan) PunyaGeofence() bool {
	return p.Latitude != nil && p.Longitude != nil && p.RadiusMeter != nil
}

type ItemPenugasan struct {
	gorm.Model
	PenugasanID uint            `json:"penugasan_id"`
	Nama        string          `json:"nama"`
	Status      StatusPenugasan `json:"status" gorm:"type:varchar(20);default:PENDING"`

	WaktuMulai   *time.Time `json:"waktu_mulai"`
	WaktuSelesai *time.Time `json:"waktu_selesai"`
	DurasiDetik  int64      `json:"durasi_detik"`

	// Bukti sebelum (saat mulai)
	FotoSebelum string   `json:"foto_sebelum"`
	LatSebelum  *float64 `json:"lat_sebelum"`
	LonSebelum  *float64 `json:"lon_sebelum"`

	// Bukti sesudah (saat selesai)
	FotoSesudah string   `json:"foto_sesudah"`
	LatSesudah  *float64 `json:"lat_sesudah"`
	LonSesudah  *float64 `json:"lon_sesudah"`

	Ringkasan string `json:"ringkasan"`
	Lampiran  string `json:"lampiran"`
}
