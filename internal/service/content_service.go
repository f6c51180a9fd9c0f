package service

import (
	"errors"
	"fmt"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/repository"
	"github.com/DesVallees/VAQ-sub000/pkg/validator"

	"github.com/google/uuid"
)

// Articles, locations, and pediatricians are flat timestamped records:
// no variant behavior, no invariants beyond required-field presence.

var (
	ErrArticleNotFound      = errors.New("article not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrPediatricianNotFound = errors.New("pediatrician not found")
)

func structError(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	return nil
}

// ---------------------------------------------------------------------
// Articles

type ArticleService interface {
	CreateArticle(req *model.Article, actorID string) (*model.Article, error)
	UpdateArticle(id uuid.UUID, req *model.Article, actorID string) (*model.Article, error)
	DeleteArticle(id uuid.UUID, actorID string) error
	GetArticle(id uuid.UUID) (*model.Article, error)
	GetAllArticles() ([]model.Article, error)
}

type articleService struct {
	repo repository.ArticleRepository
}

func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) CreateArticle(req *model.Article, actorID string) (*model.Article, error) {
	if err := structError(req); err != nil {
		return nil, err
	}
	req.CreatedBy = actorID
	req.UpdatedBy = actorID
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *articleService) UpdateArticle(id uuid.UUID, req *model.Article, actorID string) (*model.Article, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrArticleNotFound
	}
	if err := structError(req); err != nil {
		return nil, err
	}
	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	req.CreatedBy = existing.CreatedBy
	req.UpdatedBy = actorID
	if err := s.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *articleService) DeleteArticle(id uuid.UUID, actorID string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return ErrArticleNotFound
	}
	return s.repo.Delete(id, actorID)
}

func (s *articleService) GetArticle(id uuid.UUID) (*model.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *articleService) GetAllArticles() ([]model.Article, error) {
	return s.repo.FindAll()
}

// ---------------------------------------------------------------------
// Locations

type LocationService interface {
	CreateLocation(req *model.Location, actorID string) (*model.Location, error)
	UpdateLocation(id uuid.UUID, req *model.Location, actorID string) (*model.Location, error)
	DeleteLocation(id uuid.UUID, actorID string) error
	GetLocation(id uuid.UUID) (*model.Location, error)
	GetAllLocations() ([]model.Location, error)
}

type locationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo}
}

func (s *locationService) CreateLocation(req *model.Location, actorID string) (*model.Location, error) {
	if err := structError(req); err != nil {
		return nil, err
	}
	req.CreatedBy = actorID
	req.UpdatedBy = actorID
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *locationService) UpdateLocation(id uuid.UUID, req *model.Location, actorID string) (*model.Location, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	if err := structError(req); err != nil {
		return nil, err
	}
	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	req.CreatedBy = existing.CreatedBy
	req.UpdatedBy = actorID
	if err := s.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *locationService) DeleteLocation(id uuid.UUID, actorID string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return ErrLocationNotFound
	}
	return s.repo.Delete(id, actorID)
}

func (s *locationService) GetLocation(id uuid.UUID) (*model.Location, error) {
	location, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

func (s *locationService) GetAllLocations() ([]model.Location, error) {
	return s.repo.FindAll()
}

// ---------------------------------------------------------------------
// Pediatricians

type PediatricianService interface {
	CreatePediatrician(req *model.Pediatrician, actorID string) (*model.Pediatrician, error)
	UpdatePediatrician(id uuid.UUID, req *model.Pediatrician, actorID string) (*model.Pediatrician, error)
	DeletePediatrician(id uuid.UUID, actorID string) error
	GetPediatrician(id uuid.UUID) (*model.Pediatrician, error)
	GetAllPediatricians() ([]model.Pediatrician, error)
}

type pediatricianService struct {
	repo repository.PediatricianRepository
}

func NewPediatricianService(repo repository.PediatricianRepository) PediatricianService {
	return &pediatricianService{repo: repo}
}

func (s *pediatricianService) CreatePediatrician(req *model.Pediatrician, actorID string) (*model.Pediatrician, error) {
	if err := structError(req); err != nil {
		return nil, err
	}
	req.CreatedBy = actorID
	req.UpdatedBy = actorID
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *pediatricianService) UpdatePediatrician(id uuid.UUID, req *model.Pediatrician, actorID string) (*model.Pediatrician, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrPediatricianNotFound
	}
	if err := structError(req); err != nil {
		return nil, err
	}
	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	req.CreatedBy = existing.CreatedBy
	req.UpdatedBy = actorID
	if err := s.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *pediatricianService) DeletePediatrician(id uuid.UUID, actorID string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return ErrPediatricianNotFound
	}
	return s.repo.Delete(id, actorID)
}

func (s *pediatricianService) GetPediatrician(id uuid.UUID) (*model.Pediatrician, error) {
	pediatrician, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrPediatricianNotFound
	}
	return pediatrician, nil
}

func (s *pediatricianService) GetAllPediatricians() ([]model.Pediatrician, error) {
	return s.repo.FindAll()
}
