package repository

import (
	"logbook-lapangan-backend/internal/model"

	"gorm.io/gorm"
)

type PetugasRepository interface {
	FindByUsername(username string) (*model.Petugas, error)
	FindByID(id uint) (*model.Petugas, error)
	Create(petugas *model.Petugas) error
	Update(petugas *model.Petugas) error
	GetAll() ([]model.Petugas, error)
}

type petugasRepository struct {
	db *gorm.DB
}

func NewPetugasRepository(db *gorm.DB) PetugasRepository {
	return &petugasRepository{db}
}

func (r *petugasRepository) FindByUsername(username string) (*model.Petugas, error) {
	var petugas model.Petugas
	err := r.db.Where("username = ?", username).First(&petugas).Error
	if err != nil {
		return nil, err
	}
	return &petugas, nil
}

func (r *petugasRepository) FindByID(id uint) (*model.Petugas, error) {
	var petugas model.Petugas
	err := r.db.First(&petugas, id).Error
	if err != nil {
		return nil, err
	}
	return &petugas, nil
}

func (r *petugasRepository) Create(petugas *model.Petugas) error {
	return r.db.Create(petugas).Error
}

func (r *petugasRepository) Update(petugas *model.Petugas) error {
	return r.db.Save(petugas).Error
}

func (r *petugasRepository) GetAll() ([]model.Petugas, error) {
	var list []model.Petugas
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}
