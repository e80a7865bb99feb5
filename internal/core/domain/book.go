package domain

// Book belongs to exactly one author via AuthorID. Author is populated on
// reads that eagerly attach the owning author.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	AuthorID    string  `json:"author_id"`
	Description string  `json:"description,omitempty"`
	Author      *Author `json:"author,omitempty"`
}
