package store

import (
	"jonasarte-backend/internal/models"
)

// ListCategories returns all categories in document order. On a fresh
// deployment this is the two seeded defaults.
func (s *Store) ListCategories() ([]models.Category, error) {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()
	return s.loadCategories()
}

func (s *Store) loadCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.readDocument(categoriesFile, &categories, seedCategories()); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) CreateCategory(name string) (models.Category, error) {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	categories, err := s.loadCategories()
	if err != nil {
		return models.Category{}, err
	}

	maxID := 0
	for _, c := range categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	category := models.Category{ID: maxID + 1, Name: name}

	categories = append(categories, category)
	if err := s.writeDocument(categoriesFile, categories); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *Store) UpdateCategory(id int, name string) (models.Category, error) {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	categories, err := s.loadCategories()
	if err != nil {
		return models.Category{}, err
	}

	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		categories[i].Name = name
		if err := s.writeDocument(categoriesFile, categories); err != nil {
			return models.Category{}, err
		}
		return categories[i], nil
	}
	return models.Category{}, ErrNotFound
}

// DeleteCategory removes the record only. Products referencing the
// category by name keep their now-dangling string; orphaning them this way
// is expected, not a defect.
func (s *Store) DeleteCategory(id int) error {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	categories, err := s.loadCategories()
	if err != nil {
		return err
	}

	for i, c := range categories {
		if c.ID != id {
			continue
		}
		categories = append(categories[:i], categories[i+1:]...)
		return s.writeDocument(categoriesFile, categories)
	}
	return ErrNotFound
}
