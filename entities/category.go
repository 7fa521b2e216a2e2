package entities

// Category is a flat lookup document; ID is the document identifier.
type Category struct {
	ID   string `firestore:"-" json:"id"`
	Name string `firestore:"name" json:"name"`
}
