package repository

import (
	"github.com/DesVallees/VAQ-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PediatricianRepository interface {
	Create(pediatrician *model.Pediatrician) error
	Update(pediatrician *model.Pediatrician) error
	Delete(id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Pediatrician, error)
	FindByIDs(ids []string) ([]model.Pediatrician, error)
	FindAll() ([]model.Pediatrician, error)
}

type pediatricianRepo struct {
	db *gorm.DB
}

func NewPediatricianRepo(db *gorm.DB) PediatricianRepository {
	return &pediatricianRepo{db}
}

func (r *pediatricianRepo) Create(pediatrician *model.Pediatrician) error {
	return r.db.Create(pediatrician).Error
}

func (r *pediatricianRepo) Update(pediatrician *model.Pediatrician) error {
	return r.db.Save(pediatrician).Error
}

func (r *pediatricianRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Pediatrician{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *pediatricianRepo) FindByID(id uuid.UUID) (*model.Pediatrician, error) {
	var pediatrician model.Pediatrician
	if err := r.db.First(&pediatrician, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pediatrician, nil
}

func (r *pediatricianRepo) FindByIDs(ids []string) ([]model.Pediatrician, error) {
	var pediatricians []model.Pediatrician
	if len(ids) == 0 {
		return pediatricians, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&pediatricians).Error
	return pediatricians, err
}

func (r *pediatricianRepo) FindAll() ([]model.Pediatrician, error) {
	var pediatricians []model.Pediatrician
	err := r.db.Order("full_name ASC").Find(&pediatricians).Error
	return pediatricians, err
}
