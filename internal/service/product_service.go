package service

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/repository"
	"github.com/DesVallees/VAQ-sub000/internal/ws"
	"github.com/DesVallees/VAQ-sub000/pkg/storage"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// Localized field messages, mirrored by the dashboard forms.
const (
	msgRequired          = "Este campo es obligatorio"
	msgNegativeAge       = "La edad mínima no puede ser negativa"
	msgAgeRange          = "La edad mínima no puede ser mayor que la edad máxima"
	msgNegativePrice     = "El precio no puede ser negativo"
	msgOldPriceTooLow    = "El precio anterior debe ser mayor que el precio actual"
	msgPriceRequired     = "El precio es obligatorio cuando se permite pagar el programa completo"
	msgAtLeastOneVaccine = "Seleccione al menos una vacuna"
	msgAtLeastOneBundle  = "Seleccione al menos un paquete de dosis"
	msgNotAVaccine       = "Uno de los productos seleccionados no es una vacuna"
	msgNotABundle        = "Uno de los productos seleccionados no es un paquete de dosis"
	msgUnknownPediatra   = "Uno de los pediatras seleccionados no existe"
	msgUnknownType       = "Tipo de producto desconocido"
)

// ValidationError carries a field -> message map so the dashboard can
// focus the first invalid field and report the invalid count.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

type ProductService interface {
	CreateProduct(req *model.Product, actorID string) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product, actorID string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actorID string) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListCatalog(query CatalogQuery) ([]model.Product, error)
	UploadImage(id uuid.UUID, filename string, content io.Reader, actorID string) (*model.Product, error)
}

type productService struct {
	productRepo      repository.ProductRepository
	pediatricianRepo repository.PediatricianRepository
	store            storage.Store
	wsHub            *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, pedRepo repository.PediatricianRepository, store storage.Store, hub *ws.Hub) ProductService {
	return &productService{
		productRepo:      pRepo,
		pediatricianRepo: pedRepo,
		store:            store,
		wsHub:            hub,
	}
}

// Validate evaluates the unconditional rules first, then the rules of the
// selected variant. The returned error is nil when every field passes.
func (s *productService) validate(p *model.Product) *ValidationError {
	ve := newValidationError()

	// Unconditional rules
	if p.Name == "" {
		ve.Fields["name"] = msgRequired
	}
	if p.CommonName == "" {
		ve.Fields["commonName"] = msgRequired
	}
	if p.Description == "" {
		ve.Fields["description"] = msgRequired
	}
	if p.MinAge < 0 {
		ve.Fields["minAge"] = msgNegativeAge
	}
	if p.MaxAge < p.MinAge {
		ve.Fields["ageRange"] = msgAgeRange
	}
	if len(p.PediatricianIDs) > 0 {
		found, err := s.pediatricianRepo.FindByIDs(p.PediatricianIDs)
		if err != nil || len(found) != len(p.PediatricianIDs) {
			ve.Fields["pediatricianIds"] = msgUnknownPediatra
		}
	}

	// Variant-conditional rules
	switch p.Type {
	case model.ProductVaccine:
		if p.Manufacturer == "" {
			ve.Fields["manufacturer"] = msgRequired
		}
		if p.DosageInfo == "" {
			ve.Fields["dosageInfo"] = msgRequired
		}
		if p.TargetDiseases == "" {
			ve.Fields["targetDiseases"] = msgRequired
		}
		if p.DosesAndBoosters == "" {
			ve.Fields["dosesAndBoosters"] = msgRequired
		}
		s.validatePricing(p, ve)

	case model.ProductBundle:
		if len(p.IncludedVaccineIDs) == 0 {
			ve.Fields["includedVaccineIds"] = msgAtLeastOneVaccine
		} else if !s.allOfType(p.IncludedVaccineIDs, model.ProductVaccine) {
			ve.Fields["includedVaccineIds"] = msgNotAVaccine
		}
		s.validatePricing(p, ve)

	case model.ProductPackage:
		if len(p.IncludedBundleIDs) == 0 {
			ve.Fields["includedBundleIds"] = msgAtLeastOneBundle
		} else if !s.allOfType(p.IncludedBundleIDs, model.ProductBundle) {
			ve.Fields["includedBundleIds"] = msgNotABundle
		}
		if p.CanPayWholeProgram {
			if p.Price == nil {
				ve.Fields["price"] = msgPriceRequired
			} else {
				s.validatePricing(p, ve)
			}
		}
		// Without the whole-program flag the price fields are forced to
		// null by Shape(), so no pricing rules apply.

	default:
		ve.Fields["type"] = msgUnknownType
	}

	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}

func (s *productService) validatePricing(p *model.Product, ve *ValidationError) {
	if p.Price != nil && *p.Price < 0 {
		ve.Fields["price"] = msgNegativePrice
	}
	if p.OldPrice != nil {
		if p.Price == nil || *p.OldPrice <= *p.Price {
			ve.Fields["oldPrice"] = msgOldPriceTooLow
		}
	}
}

// allOfType checks that every referenced id resolves to an existing,
// non-deleted product of the expected variant.
func (s *productService) allOfType(ids model.StringList, want model.ProductType) bool {
	found, err := s.productRepo.FindByIDs(ids)
	if err != nil || len(found) != len(ids) {
		return false
	}
	for _, p := range found {
		if p.Type != want {
			return false
		}
	}
	return true
}

func (s *productService) CreateProduct(req *model.Product, actorID string) (*model.Product, error) {
	if ve := s.validate(req); ve != nil {
		return nil, ve
	}

	req.Shape()
	req.CreatedBy = actorID
	req.UpdatedBy = actorID

	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}

	s.notify("catalog_update", "product_created", req)
	return req, nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *model.Product, actorID string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if ve := s.validate(req); ve != nil {
		return nil, ve
	}

	// Full overwrite of editable fields. Identity, creation metadata, and
	// the stored image key survive the edit; a type change discards the
	// previous variant's fields via Shape().
	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	req.CreatedBy = existing.CreatedBy
	req.ImagePath = existing.ImagePath
	req.UpdatedBy = actorID
	req.Shape()

	if err := s.productRepo.Update(req); err != nil {
		return nil, err
	}

	s.notify("catalog_update", "product_updated", req)
	return req, nil
}

func (s *productService) DeleteProduct(id uuid.UUID, actorID string) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(id, actorID); err != nil {
		return err
	}

	s.notify("catalog_update", "product_deleted", product)
	return nil
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) ListCatalog(query CatalogQuery) ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return ApplyCatalogQuery(products, query), nil
}

// UploadImage stores a replacement image for the product. Order matters:
// the new object is written first, then the document; if the document
// write fails the fresh upload is removed so no orphan is left behind.
// Deleting the superseded object is best effort and only logged.
func (s *productService) UploadImage(id uuid.UUID, filename string, content io.Reader, actorID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	newKey, err := s.store.Save(product.ImageFolder(), filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	oldKey := product.ImagePath
	product.ImagePath = newKey
	product.UpdatedBy = actorID

	if err := s.productRepo.Update(product); err != nil {
		if cleanupErr := s.store.Delete(newKey); cleanupErr != nil {
			log.Printf("product image: failed to remove object %s after write failure: %v", newKey, cleanupErr)
		}
		return nil, err
	}

	if oldKey != "" {
		if err := s.store.Delete(oldKey); err != nil {
			log.Printf("product image: failed to remove superseded object %s: %v", oldKey, err)
		}
	}

	s.notify("catalog_update", "product_image_updated", product)
	return product, nil
}

func (s *productService) notify(event, action string, p *model.Product) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Notify(event, map[string]interface{}{
		"action": action,
		"product": map[string]interface{}{
			"id":   p.ID,
			"type": p.Type,
			"name": p.Name,
		},
	})
}
