package models

// Toast variants.
const (
	ToastDefault     = "default"
	ToastDestructive = "destructive"
)

// Toast is a short user-visible notification.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}
