package database

import (
	"fmt"

	"logbook-lapangan-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi data awal: satu admin, satu petugas contoh, tugas dasar,
// dan hari libur nasional terdekat. Aman dipanggil berulang (FirstOrCreate).
func SeedAll(db *gorm.DB) {
	seedPetugas(db)
	seedTugas(db)
	seedHariLibur(db)
}

func seedPetugas(db *gorm.DB) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	admin := model.Petugas{
		Nama:     "Administrator",
		Username: "admin",
		Password: string(hash),
		Email:    "admin@logbook-lapangan.local",
		Role:     "admin",
		IsActive: true,
	}
	db.Where(model.Petugas{Username: "admin"}).FirstOrCreate(&admin)

	hashPetugas, _ := bcrypt.GenerateFromPassword([]byte("petugas123"), bcrypt.DefaultCost)
	petugas := model.Petugas{
		Nama:     "Petugas Contoh",
		Username: "petugas01",
		Password: string(hashPetugas),
		Role:     "petugas",
		IsActive: true,
	}
	db.Where(model.Petugas{Username: "petugas01"}).FirstOrCreate(&petugas)

	fmt.Println("  - Petugas: admin/admin123, petugas01/petugas123")
}

func seedTugas(db *gorm.DB) {
	list := []model.Tugas{
		{Nama: "Patroli Keliling", Deskripsi: "Patroli rutin area kerja", WajibFoto: true},
		{Nama: "Pembersihan Area", Deskripsi: "Pembersihan fasilitas umum", WajibFoto: true, WajibCatatan: true},
		{Nama: "Pengecekan Instalasi", Deskripsi: "Cek kondisi instalasi dan laporkan", WajibFoto: true, WajibCatatan: true, WajibLampiran: true},
	}
	for i := range list {
		db.Where(model.Tugas{Nama: list[i].Nama}).FirstOrCreate(&list[i])
	}
	fmt.Println("  - Tugas dasar dibuat")
}

func seedHariLibur(db *gorm.DB) {
	list := []model.HariLibur{
		{Tanggal: "2026-01-01", Nama: "Tahun Baru", Keterangan: "Tahun Baru Masehi"},
		{Tanggal: "2026-08-17", Nama: "Hari Kemerdekaan", Keterangan: "HUT Republik Indonesia"},
		{Tanggal: "2026-12-25", Nama: "Hari Raya Natal", Keterangan: "Libur nasional"},
	}
	for i := range list {
		db.Where(model.HariLibur{Tanggal: list[i].Tanggal}).FirstOrCreate(&list[i])
	}
	fmt.Println("  - Hari libur nasional dibuat")
}
