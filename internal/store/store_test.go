package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jonasarte-backend/internal/models"
)

func TestFreshDeploymentSeedsDefaults(t *testing.T) {
	st := New(t.TempDir())

	categories, err := st.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 seeded categories, got %d", len(categories))
	}
	if categories[0].ID != 1 || categories[0].Name != "Vidrio Artístico" {
		t.Fatalf("unexpected first seed category: %+v", categories[0])
	}
	if categories[1].ID != 2 || categories[1].Name != "Decoración" {
		t.Fatalf("unexpected second seed category: %+v", categories[1])
	}

	profile, err := st.Profile()
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Greeting != "Hola" || profile.Subtitle != "¿QUÉ TAL?" {
		t.Fatalf("unexpected seeded profile: %+v", profile)
	}
	if profile.Image == "" {
		t.Fatal("expected seeded profile image to be set")
	}

	products, err := st.ListProducts()
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty product seed, got %d products", len(products))
	}
}

func TestSeedDocumentsPersistOnDisk(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	if _, err := st.ListCategories(); err != nil {
		t.Fatalf("ListCategories returned error: %v", err)
	}
	if _, err := st.Profile(); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}

	for _, name := range []string{"categories.json", "profile.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist after first load: %v", name, err)
		}
	}
}

func TestMalformedDocumentFailsLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := New(dir)
	_, err := st.ListProducts()
	if err == nil {
		t.Fatal("expected error when loading malformed document")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed document must not report ErrNotFound, got %v", err)
	}
}

func TestWritesVisibleAcrossStoreInstances(t *testing.T) {
	dir := t.TempDir()

	first := New(dir)
	created, err := first.CreateProduct(models.Product{Name: "Vaso azul", Price: 25})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}

	second := New(dir)
	got, err := second.GetProduct(created.ID)
	if err != nil {
		t.Fatalf("GetProduct from second store returned error: %v", err)
	}
	if got.Name != "Vaso azul" {
		t.Fatalf("expected persisted product, got %+v", got)
	}
}

func TestReplaceProfileOverwritesCompletely(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Profile(); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}

	if err := st.ReplaceProfile(models.Profile{Greeting: "Hi"}); err != nil {
		t.Fatalf("ReplaceProfile returned error: %v", err)
	}

	got, err := st.Profile()
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	want := models.Profile{Greeting: "Hi"}
	if got != want {
		t.Fatalf("expected full overwrite, got %+v", got)
	}
}
