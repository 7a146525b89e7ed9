// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// Compile-time check that BookService implements ports.BookService.
var _ ports.BookService = (*BookService)(nil)

// BookService implements ports.BookService on top of the BookRepository port.
// It owns existence checks, full replacement versus partial merge, and
// paging delegation. It keeps no state between calls.
type BookService struct {
	repo   ports.BookRepository
	logger *slog.Logger
}

// NewBookService creates a BookService backed by repo. A nil logger is
// replaced with one that discards output.
func NewBookService(repo ports.BookRepository, logger *slog.Logger) *BookService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BookService{
		repo:   repo,
		logger: logger,
	}
}

// ListBooks returns one page of books in repository order.
func (s *BookService) ListBooks(ctx context.Context, req page.Request) (page.Result[book.Book], error) {
	s.logger.InfoContext(ctx, "listing books",
		slog.Int("page", req.Number),
		slog.Int("size", req.Size),
	)

	result, err := s.repo.FindPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list books",
			slog.String("operation", "ListBooks"),
			slog.Int("page", req.Number),
			slog.Any("error", err),
		)
		return page.Result[book.Book]{}, fmt.Errorf("listing books: %w", err)
	}

	return result, nil
}

// GetBook returns the book with the given ID, or found=false when absent.
func (s *BookService) GetBook(ctx context.Context, id int64) (book.Book, bool, error) {
	s.logger.InfoContext(ctx, "fetching book", slog.Int64("id", id))

	b, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch book",
			slog.String("operation", "GetBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return book.Book{}, false, fmt.Errorf("fetching book: %w", err)
	}

	return b, found, nil
}

// CreateBook stores b under a storage-assigned ID.
func (s *BookService) CreateBook(ctx context.Context, b book.Book) (book.Book, error) {
	s.logger.InfoContext(ctx, "creating book", slog.String("title", b.Title))

	created, err := s.repo.Save(ctx, b.WithoutID())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create book",
			slog.String("operation", "CreateBook"),
			slog.Any("error", err),
		)
		return book.Book{}, fmt.Errorf("creating book: %w", err)
	}

	return created, nil
}

// CreateBooks stores every book under a storage-assigned ID.
func (s *BookService) CreateBooks(ctx context.Context, books []book.Book) ([]book.Book, error) {
	s.logger.InfoContext(ctx, "creating books", slog.Int("count", len(books)))

	fresh := make([]book.Book, len(books))
	for i := range books {
		fresh[i] = books[i].WithoutID()
	}

	created, err := s.repo.SaveAll(ctx, fresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create books",
			slog.String("operation", "CreateBooks"),
			slog.Int("count", len(books)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating books: %w", err)
	}

	return created, nil
}

// UpdateBook replaces the stored book with b, keeping the stored ID.
// Fields left at their zero value in b overwrite the stored values.
func (s *BookService) UpdateBook(ctx context.Context, id int64, b book.Book) (book.Book, error) {
	s.logger.InfoContext(ctx, "updating book", slog.Int64("id", id))

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check book existence",
			slog.String("operation", "UpdateBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return book.Book{}, fmt.Errorf("checking book %d: %w", id, err)
	}
	if !exists {
		return book.Book{}, fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}

	b.ID = id

	// Save replaces conditionally, so a delete racing with this update
	// surfaces as ErrNotFound instead of resurrecting the record.
	updated, err := s.repo.Save(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update book",
			slog.String("operation", "UpdateBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return book.Book{}, fmt.Errorf("updating book %d: %w", id, err)
	}

	return updated, nil
}

// PatchBook merges the present fields of p into the stored book.
func (s *BookService) PatchBook(ctx context.Context, id int64, p book.Patch) (book.Book, error) {
	s.logger.InfoContext(ctx, "patching book", slog.Int64("id", id))

	existing, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch book for patch",
			slog.String("operation", "PatchBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return book.Book{}, fmt.Errorf("fetching book %d: %w", id, err)
	}
	if !found {
		return book.Book{}, fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}

	merged := p.Apply(existing)
	merged.ID = id

	patched, err := s.repo.Save(ctx, merged)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to patch book",
			slog.String("operation", "PatchBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return book.Book{}, fmt.Errorf("patching book %d: %w", id, err)
	}

	return patched, nil
}

// DeleteBook removes the book and reports whether it existed.
func (s *BookService) DeleteBook(ctx context.Context, id int64) (bool, error) {
	s.logger.InfoContext(ctx, "deleting book", slog.Int64("id", id))

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check book existence",
			slog.String("operation", "DeleteBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("checking book %d: %w", id, err)
	}
	if !exists {
		return false, nil
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete book",
			slog.String("operation", "DeleteBook"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("deleting book %d: %w", id, err)
	}

	return deleted, nil
}
