package repository

import (
	"logbook-lapangan-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PenugasanRepository interface {
	Create(penugasan *model.Penugasan) error
	CreateMany(penugasan []model.Penugasan) error
	GetByID(id uint) (*model.Penugasan, error)
	GetByPetugas(petugasID uint) ([]model.Penugasan, error)
	GetAll() ([]model.Penugasan, error)
	Update(penugasan *model.Penugasan) error
	Delete(penugasan *model.Penugasan) error
}

type penugasanRepository struct {
	db *gorm.DB
}

func NewPenugasanRepository(db *gorm.DB) PenugasanRepository {
	return &penugasanRepository{db}
}

// Create menyimpan penugasan beserta item bawaannya dalam satu transaksi
// (GORM membuat asosiasi Items otomatis).
func (r *penugasanRepository) Create(penugasan *model.Penugasan) error {
	return r.db.Create(penugasan).Error
}

// CreateMany dipakai generate template: semua penugasan satu trigger masuk
// dalam satu transaksi, semua berhasil atau semua batal.
func (r *penugasanRepository) CreateMany(penugasan []model.Penugasan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&penugasan).Error
	})
}

func (r *penugasanRepository) GetByID(id uint) (*model.Penugasan, error) {
	var penugasan model.Penugasan
	err := r.db.Preload("Tugas").Preload("Petugas").Preload("Items").First(&penugasan, id).Error
	if err != nil {
		return nil, err
	}
	return &penugasan, nil
}

func (r *penugasanRepository) GetByPetugas(petugasID uint) ([]model.Penugasan, error) {
	var list []model.Penugasan
	err := r.db.Preload("Tugas").Preload("Items").
		Where("petugas_id = ?", petugasID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *penugasanRepository) GetAll() ([]model.Penugasan, error) {
	var list []model.Penugasan
	err := r.db.Preload("Tugas").Preload("Petugas").Preload("Items").
		Order("created_at desc").Find(&list).Error
	return list, err
}

// Update hanya menyimpan kolom penugasan itu sendiri, relasi yang
// ter-preload tidak ikut di-upsert.
func (r *penugasanRepository) Update(penugasan *model.Penugasan) error {
	return r.db.Omit(clause.Associations).Save(penugasan).Error
}

// Delete menghapus penugasan beserta seluruh itemnya (cascade manual).
func (r *penugasanRepository) Delete(penugasan *model.Penugasan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("penugasan_id = ?", penugasan.ID).Delete(&model.ItemPenugasan{}).Error; err != nil {
			return err
		}
		return tx.Delete(penugasan).Error
	})
}
