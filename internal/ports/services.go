package ports

import (
	"context"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
)

// BookService defines the service port for the book lifecycle.
// Implemented by the application layer; called by inbound adapters (handlers).
// It is stateless: every call re-reads authoritative state through the
// BookRepository port.
type BookService interface {
	// ListBooks returns one page of books in repository order.
	// A page beyond the available data yields an empty result, not an error.
	ListBooks(ctx context.Context, req page.Request) (page.Result[book.Book], error)

	// GetBook returns the book with the given ID. found is false (and err nil)
	// when no such book exists.
	GetBook(ctx context.Context, id int64) (b book.Book, found bool, err error)

	// CreateBook stores a new book and returns it with its assigned ID.
	// Any caller-supplied ID is ignored.
	CreateBook(ctx context.Context, b book.Book) (book.Book, error)

	// CreateBooks stores several new books, ignoring caller-supplied IDs.
	// Atomicity of a partially failing batch is defined by the repository.
	CreateBooks(ctx context.Context, books []book.Book) ([]book.Book, error)

	// UpdateBook replaces every field of an existing book with those of b.
	// The stored ID is kept regardless of b.ID.
	// Returns domain.ErrNotFound if the book does not exist.
	UpdateBook(ctx context.Context, id int64, b book.Book) (book.Book, error)

	// PatchBook overwrites only the fields present in p.
	// Returns domain.ErrNotFound if the book does not exist.
	PatchBook(ctx context.Context, id int64, p book.Patch) (book.Book, error)

	// DeleteBook removes a book and reports whether it existed.
	// Deleting the same ID twice returns true and then false.
	DeleteBook(ctx context.Context, id int64) (bool, error)
}
