package models

import "strings"

// Product is one catalog item. Category is a soft reference: it carries a
// Category.Name but is never validated against the categories collection,
// so deleting a category leaves referencing products with a dangling name.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      ImageList `json:"images"`
	// Image mirrors Images[0] for clients that predate the gallery field.
	Image string `json:"image"`
}

// SyncImage realigns the legacy singular field with the gallery. Documents
// written before the gallery existed carry only Image; those get the
// gallery backfilled from it. Otherwise Image is derived from Images[0].
func (p *Product) SyncImage() {
	if len(p.Images) == 0 && strings.TrimSpace(p.Image) != "" {
		p.Images = ImageList{p.Image}
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	} else {
		p.Image = ""
	}
}
