package services

import (
	"database/sql"
	"errors"

	"minimarket/internal/domain"
	"minimarket/internal/repos"

	"github.com/jmoiron/sqlx"
)

// CatalogService is built per request on top of the transaction the boundary
// opened, so every read and write of one request shares one connection.
type CatalogService struct {
	Prods *repos.ProductRepo
	Cats  *repos.CategoryRepo
}

func NewCatalogService(db sqlx.Ext) *CatalogService {
	return &CatalogService{
		Prods: repos.NewProductRepo(db),
		Cats:  repos.NewCategoryRepo(db),
	}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	out, err := s.Prods.List()
	if err != nil {
		return nil, &StoreError{Op: "listar productos", Err: err}
	}
	return out, nil
}

// GetProduct returns nil (not an error) when no product has that id.
func (s *CatalogService) GetProduct(id int64) (*domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "buscar producto", Err: err}
	}
	return &p, nil
}

func (s *CatalogService) SaveProduct(p domain.Product) error {
	if err := s.Prods.Save(p); err != nil {
		return &StoreError{Op: "guardar producto", Err: err}
	}
	return nil
}

func (s *CatalogService) DeleteProduct(id int64) error {
	if err := s.Prods.Delete(id); err != nil {
		return &StoreError{Op: "eliminar producto", Err: err}
	}
	return nil
}

func (s *CatalogService) ActivateProduct(id int64) error {
	if err := s.Prods.Activate(id); err != nil {
		return &StoreError{Op: "activar producto", Err: err}
	}
	return nil
}

func (s *CatalogService) DeactivateProduct(id int64) error {
	if err := s.Prods.Deactivate(id); err != nil {
		return &StoreError{Op: "desactivar producto", Err: err}
	}
	return nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	out, err := s.Cats.List()
	if err != nil {
		return nil, &StoreError{Op: "listar categorias", Err: err}
	}
	return out, nil
}

func (s *CatalogService) GetCategory(id int64) (*domain.Category, error) {
	cat, err := s.Cats.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "buscar categoria", Err: err}
	}
	return &cat, nil
}

func (s *CatalogService) SaveCategory(cat domain.Category) error {
	if err := s.Cats.Save(cat); err != nil {
		return &StoreError{Op: "guardar categoria", Err: err}
	}
	return nil
}

func (s *CatalogService) DeleteCategory(id int64) error {
	if err := s.Cats.Delete(id); err != nil {
		return &StoreError{Op: "eliminar categoria", Err: err}
	}
	return nil
}

func (s *CatalogService) ActivateCategory(id int64) error {
	if err := s.Cats.Activate(id); err != nil {
		return &StoreError{Op: "activar categoria", Err: err}
	}
	return nil
}

func (s *CatalogService) DeactivateCategory(id int64) error {
	if err := s.Cats.Deactivate(id); err != nil {
		return &StoreError{Op: "desactivar categoria", Err: err}
	}
	return nil
}
