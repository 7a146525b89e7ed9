package ports

import (
	"context"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
)

// BookRepository defines the persistence port for books.
// Implemented by storage adapters; called by the application layer.
// Implementations must be safe for concurrent use and read-your-writes
// consistent.
type BookRepository interface {
	// ExistsByID reports whether a book with the given ID is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByID returns the stored book. found is false when it does not exist.
	FindByID(ctx context.Context, id int64) (b book.Book, found bool, err error)

	// FindPage returns one page of books ordered by ID together with the
	// total number of stored books.
	FindPage(ctx context.Context, req page.Request) (page.Result[book.Book], error)

	// Count returns the number of stored books.
	Count(ctx context.Context) (int64, error)

	// Save inserts b when b.ID is zero, assigning a new ID. Otherwise it
	// replaces the stored record with that ID and returns domain.ErrNotFound
	// if there is none; it never inserts a record under a caller-chosen ID.
	Save(ctx context.Context, b book.Book) (book.Book, error)

	// SaveAll saves every book as Save would, in input order.
	SaveAll(ctx context.Context, books []book.Book) ([]book.Book, error)

	// DeleteByID removes the book and reports whether a record was removed.
	// Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
