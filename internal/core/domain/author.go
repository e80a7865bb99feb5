package domain

// Author is a book author. Books is populated on reads that eagerly attach
// the author's books; it is never persisted as part of the author record.
type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio,omitempty"`
	Books []Book `json:"books,omitempty"`
}
