package repository

import (
	"github.com/DesVallees/VAQ-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *model.Article) error
	Update(article *model.Article) error
	Delete(id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Article, error)
	FindAll() ([]model.Article, error)
}

type articleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepository {
	return &articleRepo{db}
}

func (r *articleRepo) Create(article *model.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepo) Update(article *model.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Article{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *articleRepo) FindByID(id uuid.UUID) (*model.Article, error) {
	var article model.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) FindAll() ([]model.Article, error) {
	var articles []model.Article
	err := r.db.Order("created_at DESC").Find(&articles).Error
	return articles, err
}
