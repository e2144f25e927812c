package model

import "gorm.io/gorm"

type Tugas struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"not null"`
	Deskripsi string `json:"deskripsi"`

	// Syarat bukti yang wajib dilampirkan petugas saat mulai/selesai item
	WajibFoto     bool `json:"wajib_foto" gorm:"default:true"`
	WajibCatatan  bool `json:"wajib_catatan" gorm:"default:false"`
	WajibLampiran bool `json:"wajib_lampiran" gorm:"default:false"`
}

type HariLibur struct {
	gorm.Model
	Tanggal    string `json:"tanggal" gorm:"unique;not null"` // Format YYYY-MM-DD
	Nama       string `json:"nama"`
	Keterangan string `json:"keterangan"`
}
