package repository

import (
	"logbook-lapangan-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemPenugasanRepository interface {
	Create(item *model.ItemPenugasan) error
	GetByID(id uint) (*model.ItemPenugasan, error)
	CountByPenugasan(penugasanID uint) (int64, error)
	CountBelumSelesai(penugasanID uint) (int64, error)
	CountDikerjakanSelain(penugasanID uint, kecualiItemID uint) (int64, error)
	SimpanMulai(item *model.ItemPenugasan, penugasan *model.Penugasan) error
	SimpanSelesai(item *model.ItemPenugasan) error
	Delete(item *model.ItemPenugasan, penugasan *model.Penugasan) error
}

type itemPenugasanRepository struct {
	db *gorm.DB
}

func NewItemPenugasanRepository(db *gorm.DB) ItemPenugasanRepository {
	return &itemPenugasanRepository{db}
}

func (r *itemPenugasanRepository) Create(item *model.ItemPenugasan) error {
	return r.db.Create(item).Error
}

func (r *itemPenugasanRepository) GetByID(id uint) (*model.ItemPenugasan, error) {
	var item model.ItemPenugasan
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemPenugasanRepository) CountByPenugasan(penugasanID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ItemPenugasan{}).Where("penugasan_id = ?", penugasanID).Count(&count).Error
	return count, err
}

func (r *itemPenugasanRepository) CountBelumSelesai(penugasanID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ItemPenugasan{}).
		Where("penugasan_id = ? AND status != ?", penugasanID, model.StatusSelesai).
		Count(&count).Error
	return count, err
}

func (r *itemPenugasanRepository) CountDikerjakanSelain(penugasanID uint, kecualiItemID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ItemPenugasan{}).
		Where("penugasan_id = ? AND status = ? AND id != ?", penugasanID, model.StatusDikerjakan, kecualiItemID).
		Count(&count).Error
	return count, err
}

// SimpanMulai menyimpan transisi mulai dalam satu transaksi. Baris item
// dikunci (SELECT ... FOR UPDATE) dan waktu mulai dicek ulang di dalam
// transaksi, sehingga dua request mulai yang balapan tidak bisa sama-sama
// berhasil: yang kedua gagal ErrSudahDimulai.
func (r *itemPenugasanRepository) SimpanMulai(item *model.ItemPenugasan, penugasan *model.Penugasan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var terkunci model.ItemPenugasan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&terkunci, item.ID).Error; err != nil {
			return err
		}
		if terkunci.WaktuMulai != nil {
			return ErrSudahDimulai
		}
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if penugasan != nil {
			if err := tx.Omit(clause.Associations).Save(penugasan).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *itemPenugasanRepository) SimpanSelesai(item *model.ItemPenugasan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var terkunci model.ItemPenugasan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&terkunci, item.ID).Error; err != nil {
			return err
		}
		if terkunci.WaktuMulai == nil {
			return ErrBelumDimulai
		}
		if terkunci.WaktuSelesai != nil {
			return ErrSudahSelesai
		}
		return tx.Save(item).Error
	})
}

// Delete menghapus item; jika penugasan ikut dikirim (reset ke PENDING
// karena item yang sedang berjalan dihapus), keduanya satu transaksi.
func (r *itemPenugasanRepository) Delete(item *model.ItemPenugasan, penugasan *model.Penugasan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(item).Error; err != nil {
			return err
		}
		if penugasan != nil {
			if err := tx.Omit(clause.Associations).Save(penugasan).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
