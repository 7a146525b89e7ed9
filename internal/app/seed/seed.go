// Package seed loads a small sample catalog into empty storage.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// Books returns the sample catalog. Every call returns a fresh slice.
func Books() []book.Book {
	return []book.Book{
		{
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Price:         12.99,
			PublishedDate: book.NewDate(1960, time.July, 11),
			Genre:         "Fiction",
		},
		{
			Title:         "1984",
			Author:        "George Orwell",
			Price:         13.99,
			PublishedDate: book.NewDate(1949, time.June, 8),
			Genre:         "Dystopian",
		},
		{
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			Price:         11.99,
			PublishedDate: book.NewDate(1925, time.April, 10),
			Genre:         "Fiction",
		},
		{
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			Price:         10.99,
			PublishedDate: book.NewDate(1813, time.January, 28),
			Genre:         "Romance",
		},
		{
			Title:         "The Catcher in the Rye",
			Author:        "J.D. Salinger",
			Price:         14.99,
			PublishedDate: book.NewDate(1951, time.July, 16),
			Genre:         "Fiction",
		},
	}
}

// Run stores the sample catalog when repo holds no books and returns how
// many books were inserted. Non-empty storage is left untouched.
func Run(ctx context.Context, repo ports.BookRepository, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	if n > 0 {
		logger.InfoContext(ctx, "skipping seed, storage not empty", slog.Int64("books", n))
		return 0, nil
	}

	saved, err := repo.SaveAll(ctx, Books())
	if err != nil {
		logger.ErrorContext(ctx, "failed to seed books",
			slog.String("operation", "seed.Run"),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("seeding books: %w", err)
	}

	logger.InfoContext(ctx, "seeded sample books", slog.Int("books", len(saved)))
	return len(saved), nil
}
