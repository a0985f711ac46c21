package models

// Category names the shelves products sort themselves onto. Uniqueness of
// Name is by convention only; nothing enforces it.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
