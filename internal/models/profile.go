package models

// Profile is the singleton artist bio shown on the storefront. Contact
// handles are free text and stay empty until the admin fills them in.
type Profile struct {
	Greeting     string `json:"greeting"`
	Subtitle     string `json:"subtitle"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Whatsapp     string `json:"whatsapp"`
	Instagram    string `json:"instagram"`
	Image        string `json:"image"`
}
