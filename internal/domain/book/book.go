// Package book holds the catalog's only entity, the Book, together with the
// calendar date type it carries and the patch type used for partial updates.
package book

// Book is a catalog entry. ID is zero until the record has been persisted;
// storage assigns it and it never changes afterwards.
type Book struct {
	ID            int64
	Title         string
	Author        string
	Price         float64
	PublishedDate Date
	Genre         string
}

// IsNew reports whether the book has not been persisted yet.
func (b Book) IsNew() bool {
	return b.ID == 0
}

// WithoutID returns a copy of b with the identifier cleared, so that storage
// assigns a fresh one on insert.
func (b Book) WithoutID() Book {
	b.ID = 0
	return b
}
