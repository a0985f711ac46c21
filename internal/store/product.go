package store

import (
	"jonasarte-backend/internal/models"
)

// ProductPatch carries a partial product update. Nil fields keep the
// stored value; set fields replace it wholesale. The images list in
// particular is swapped out as a unit, never merged element-wise.
type ProductPatch struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	Category    *string           `json:"category"`
	Images      *models.ImageList `json:"images"`
	Image       *string           `json:"image"`
}

// ListProducts returns all products in document order.
func (s *Store) ListProducts() ([]models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	return s.loadProducts()
}

func (s *Store) loadProducts() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.readDocument(productsFile, &products, []models.Product{}); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProduct(id int) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// CreateProduct appends p with a freshly assigned id and persists the
// collection. The id is max(existing ids, 0)+1: deleting the highest-id
// product frees its id for the next creation, which is accepted behavior.
func (s *Store) CreateProduct(p models.Product) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return models.Product{}, err
	}

	maxID := 0
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.SyncImage()

	products = append(products, p)
	if err := s.writeDocument(productsFile, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// UpdateProduct shallow-merges patch over the stored record and persists
// the collection, returning the merged product.
func (s *Store) UpdateProduct(id int, patch ProductPatch) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return models.Product{}, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}

		if patch.Name != nil {
			products[i].Name = *patch.Name
		}
		if patch.Description != nil {
			products[i].Description = *patch.Description
		}
		if patch.Price != nil {
			products[i].Price = *patch.Price
		}
		if patch.Category != nil {
			products[i].Category = *patch.Category
		}
		if patch.Images != nil {
			products[i].Images = *patch.Images
		}
		if patch.Image != nil {
			products[i].Image = *patch.Image
		}
		products[i].SyncImage()

		if err := s.writeDocument(productsFile, products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}
	return models.Product{}, ErrNotFound
}

// DeleteProduct removes the record and returns it, so callers can clean up
// any blobs it referenced.
func (s *Store) DeleteProduct(id int) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return models.Product{}, err
	}

	for i, p := range products {
		if p.ID != id {
			continue
		}
		products = append(products[:i], products[i+1:]...)
		if err := s.writeDocument(productsFile, products); err != nil {
			return models.Product{}, err
		}
		return p, nil
	}
	return models.Product{}, ErrNotFound
}
