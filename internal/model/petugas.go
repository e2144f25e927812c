package model

import "gorm.io/gorm"

type Petugas struct {
	gorm.Model
	Nama     string `json:"nama"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	Role     string `json:"role" gorm:"default:petugas"` // admin / petugas
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Penugasan []Penugasan `json:"penugasan,omitempty" gorm:"foreignKey:PetugasID"`
}
