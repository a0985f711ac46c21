package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"jonasarte-backend/internal/models"
)

const (
	productsFile   = "products.json"
	categoriesFile = "categories.json"
	profileFile    = "profile.json"
)

// ErrNotFound reports an id lookup miss on products or categories.
var ErrNotFound = errors.New("not found")

// Store persists the three catalog collections as flat JSON documents
// under one directory. Nothing is cached between calls: every read goes
// back to disk, so the documents stay the single source of truth. Each
// collection has its own mutex held across the whole load-mutate-save
// cycle, so concurrent writers to the same collection cannot lose updates.
type Store struct {
	dir string

	productsMu   sync.Mutex
	categoriesMu sync.Mutex
	profileMu    sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Vidrio Artístico"},
		{ID: 2, Name: "Decoración"},
	}
}

func seedProfile() models.Profile {
	return models.Profile{
		Greeting:     "Hola",
		Subtitle:     "¿QUÉ TAL?",
		Description1: "Soy Jonás, tengo 14 años y hago arte en vidrio desde los 8.",
		Description2: "Me inspira transformar luces y colores en piezas únicas. Cada obra está hecha a mano, con paciencia y mucha curiosidad.",
		Image:        "/uploads/jonas-profile.jpg",
	}
}

// readDocument loads one collection document into out. A missing file is
// not an error: the seed value is written first and the read retried, so a
// fresh deployment initializes itself on first access.
func (s *Store) readDocument(name string, out interface{}, seed interface{}) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.writeDocument(name, seed); err != nil {
			return err
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// writeDocument overwrites the whole document. The bytes go to a temp file
// in the same directory first and are renamed into place, so a concurrent
// reader never observes a partially written document.
func (s *Store) writeDocument(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Two-space indent, matching what the original deployment wrote.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
