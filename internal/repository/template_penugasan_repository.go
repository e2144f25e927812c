package repository

import (
	"logbook-lapangan-backend/internal/model"

	"gorm.io/gorm"
)

type TemplatePenugasanRepository interface {
	GetAll() ([]model.TemplatePenugasanHarian, error)
	GetAllActive() ([]model.TemplatePenugasanHarian, error)
	GetByID(id uint) (*model.TemplatePenugasanHarian, error)
	Create(template *model.TemplatePenugasanHarian) error
	UpdateDenganItems(template *model.TemplatePenugasanHarian, items []model.TemplateItemPenugasan) error
	Delete(template *model.TemplatePenugasanHarian) error
}

type templatePenugasanRepository struct {
	db *gorm.DB
}

func NewTemplatePenugasanRepository(db *gorm.DB) TemplatePenugasanRepository {
	return &templatePenugasanRepository{db}
}

func (r *templatePenugasanRepository) GetAll() ([]model.TemplatePenugasanHarian, error) {
	var list []model.TemplatePenugasanHarian
	err := r.db.Preload("Items").Preload("Items.Tugas").Order("nama asc").Find(&list).Error
	return list, err
}

func (r *templatePenugasanRepository) GetAllActive() ([]model.TemplatePenugasanHarian, error) {
	var list []model.TemplatePenugasanHarian
	err := r.db.Preload("Items").Preload("Items.Tugas").
		Where("is_active = ?", true).Find(&list).Error
	return list, err
}

func (r *templatePenugasanRepository) GetByID(id uint) (*model.TemplatePenugasanHarian, error) {
	var template model.TemplatePenugasanHarian
	err := r.db.Preload("Items").Preload("Items.Tugas").First(&template, id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templatePenugasanRepository) Create(template *model.TemplatePenugasanHarian) error {
	return r.db.Create(template).Error
}

// UpdateDenganItems mengganti seluruh item template secara atomik
// (hapus semua lalu buat ulang dalam satu transaksi).
func (r *templatePenugasanRepository) UpdateDenganItems(template *model.TemplatePenugasanHarian, items []model.TemplateItemPenugasan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(template).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", template.ID).Delete(&model.TemplateItemPenugasan{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			for i := range items {
				items[i].ID = 0
				items[i].TemplateID = template.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		template.Items = items
		return nil
	})
}

func (r *templatePenugasanRepository) Delete(template *model.TemplatePenugasanHarian) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", template.ID).Delete(&model.TemplateItemPenugasan{}).Error; err != nil {
			return err
		}
		return tx.Delete(template).Error
	})
}
