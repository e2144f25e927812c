package repository

import (
	"logbook-lapangan-backend/internal/model"

	"gorm.io/gorm"
)

type TugasRepository interface {
	GetAll() ([]model.Tugas, error)
	GetByID(id uint) (*model.Tugas, error)
	Create(tugas *model.Tugas) error
	Update(tugas *model.Tugas) error
	Delete(id uint) error
}

type tugasRepository struct {
	db *gorm.DB
}

func NewTugasRepository(db *gorm.DB) TugasRepository {
	return &tugasRepository{db}
}

func (r *tugasRepository) GetAll() ([]model.Tugas, error) {
	var list []model.Tugas
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *tugasRepository) GetByID(id uint) (*model.Tugas, error) {
	var tugas model.Tugas
	err := r.db.First(&tugas, id).Error
	if err != nil {
		return nil, err
	}
	return &tugas, nil
}

func (r *tugasRepository) Create(tugas *model.Tugas) error {
	return r.db.Create(tugas).Error
}

func (r *tugasRepository) Update(tugas *model.Tugas) error {
	return r.db.Save(tugas).Error
}

func (r *tugasRepository) Delete(id uint) error {
	return r.db.Delete(&model.Tugas{}, id).Error
}
