package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// Compile-time interface check.
var _ ports.BookRepository = (*BookRepository)(nil)

const (
	tableBooks = "books"

	colID            = "id"
	colTitle         = "title"
	colAuthor        = "author"
	colPrice         = "price"
	colPublishedDate = "published_date"
	colGenre         = "genre"
)

var bookColumns = []any{colID, colTitle, colAuthor, colPrice, colPublishedDate, colGenre}

// bookRow is the scan target for the books table. published_date is read as
// text because drivers disagree on how DATE values arrive (time.Time from
// PostgreSQL, string from SQLite).
type bookRow struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	Author        string         `db:"author"`
	Price         float64        `db:"price"`
	PublishedDate sql.NullString `db:"published_date"`
	Genre         string         `db:"genre"`
}

func (r bookRow) toDomain() (book.Book, error) {
	b := book.Book{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		Price:  r.Price,
		Genre:  r.Genre,
	}

	if r.PublishedDate.Valid && r.PublishedDate.String != "" {
		raw := r.PublishedDate.String
		if len(raw) > len(book.DateLayout) {
			raw = raw[:len(book.DateLayout)]
		}
		d, err := book.ParseDate(raw)
		if err != nil {
			return book.Book{}, fmt.Errorf("book %d: published_date %q: %w", r.ID, r.PublishedDate.String, err)
		}
		b.PublishedDate = d
	}

	return b, nil
}

// BookRepository implements ports.BookRepository on a DB.
type BookRepository struct {
	db *DB
}

// NewBookRepository creates a BookRepository backed by db.
func NewBookRepository(db *DB) *BookRepository {
	return &BookRepository{db: db}
}

// ExistsByID implements ports.BookRepository.
func (r *BookRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.db.dialect.From(tableBooks).Prepared(true).
		Select(goqu.COUNT(colID)).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("building exists query: %w", err)
	}
	r.logQuery(ctx, "ExistsByID", query)

	var n int64
	if err := r.db.conn.QueryRowxContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("checking book %d: %w", id, err)
	}
	return n > 0, nil
}

// FindByID implements ports.BookRepository.
func (r *BookRepository) FindByID(ctx context.Context, id int64) (book.Book, bool, error) {
	query, args, err := r.db.dialect.From(tableBooks).Prepared(true).
		Select(bookColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return book.Book{}, false, fmt.Errorf("building find query: %w", err)
	}
	r.logQuery(ctx, "FindByID", query)

	var row bookRow
	if err := sqlx.GetContext(ctx, r.db.conn, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return book.Book{}, false, nil
		}
		return book.Book{}, false, fmt.Errorf("finding book %d: %w", id, err)
	}

	b, err := row.toDomain()
	if err != nil {
		return book.Book{}, false, err
	}
	return b, true, nil
}

// FindPage implements ports.BookRepository. The total and the page are read
// in two statements, so a write landing between them can make the total
// disagree with the page by that write.
func (r *BookRepository) FindPage(ctx context.Context, req page.Request) (page.Result[book.Book], error) {
	if req.Number < 0 || req.Size < 1 {
		return page.Result[book.Book]{}, fmt.Errorf("page %d size %d: %w", req.Number, req.Size, domain.ErrValidation)
	}

	total, err := r.Count(ctx)
	if err != nil {
		return page.Result[book.Book]{}, err
	}
	offset, ok := req.Offset()
	if !ok {
		return page.NewResult[book.Book](req, nil, total), nil
	}

	query, args, err := r.db.dialect.From(tableBooks).Prepared(true).
		Select(bookColumns...).
		Order(goqu.C(colID).Asc()).
		Limit(uint(req.Size)).
		Offset(uint(offset)).
		ToSQL()
	if err != nil {
		return page.Result[book.Book]{}, fmt.Errorf("building page query: %w", err)
	}
	r.logQuery(ctx, "FindPage", query)

	var rows []bookRow
	if err := sqlx.SelectContext(ctx, r.db.conn, &rows, query, args...); err != nil {
		return page.Result[book.Book]{}, fmt.Errorf("listing books page %d: %w", req.Number, err)
	}

	items := make([]book.Book, 0, len(rows))
	for _, row := range rows {
		b, err := row.toDomain()
		if err != nil {
			return page.Result[book.Book]{}, err
		}
		items = append(items, b)
	}

	return page.NewResult(req, items, total), nil
}

// Count implements ports.BookRepository.
func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.db.dialect.From(tableBooks).Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}
	r.logQuery(ctx, "Count", query)

	var n int64
	if err := r.db.conn.QueryRowxContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return n, nil
}

// Save implements ports.BookRepository. A book with an ID is replaced with a
// conditional UPDATE, so a row deleted concurrently is reported as
// domain.ErrNotFound instead of being recreated.
func (r *BookRepository) Save(ctx context.Context, b book.Book) (book.Book, error) {
	return r.save(ctx, r.db.conn, b)
}

// SaveAll implements ports.BookRepository. All books are written in one
// transaction; on any failure nothing is stored.
func (r *BookRepository) SaveAll(ctx context.Context, books []book.Book) ([]book.Book, error) {
	if len(books) == 0 {
		return []book.Book{}, nil
	}

	tx, err := r.db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	saved := make([]book.Book, 0, len(books))
	for i := range books {
		b, err := r.save(ctx, tx, books[i])
		if err != nil {
			return nil, fmt.Errorf("saving book %d of %d: %w", i+1, len(books), err)
		}
		saved = append(saved, b)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return saved, nil
}

// DeleteByID implements ports.BookRepository.
func (r *BookRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.db.dialect.Delete(tableBooks).Prepared(true).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("building delete query: %w", err)
	}
	r.logQuery(ctx, "DeleteByID", query)

	res, err := r.db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("deleting book %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting book %d: rows affected: %w", id, err)
	}
	return n > 0, nil
}

func (r *BookRepository) save(ctx context.Context, q sqlx.ExtContext, b book.Book) (book.Book, error) {
	if b.IsNew() {
		return r.insert(ctx, q, b)
	}
	return r.replace(ctx, q, b)
}

func (r *BookRepository) insert(ctx context.Context, q sqlx.ExtContext, b book.Book) (book.Book, error) {
	ds := r.db.dialect.Insert(tableBooks).Prepared(true).Rows(r.record(b))

	if r.db.postgres {
		query, args, err := ds.Returning(colID).ToSQL()
		if err != nil {
			return book.Book{}, fmt.Errorf("building insert query: %w", err)
		}
		r.logQuery(ctx, "Insert", query)

		if err := q.QueryRowxContext(ctx, query, args...).Scan(&b.ID); err != nil {
			return book.Book{}, fmt.Errorf("inserting book: %w", err)
		}
		return b, nil
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return book.Book{}, fmt.Errorf("building insert query: %w", err)
	}
	r.logQuery(ctx, "Insert", query)

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return book.Book{}, fmt.Errorf("inserting book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return book.Book{}, fmt.Errorf("inserting book: last insert id: %w", err)
	}
	b.ID = id
	return b, nil
}

func (r *BookRepository) replace(ctx context.Context, q sqlx.ExtContext, b book.Book) (book.Book, error) {
	query, args, err := r.db.dialect.Update(tableBooks).Prepared(true).
		Set(r.record(b)).
		Where(goqu.C(colID).Eq(b.ID)).
		ToSQL()
	if err != nil {
		return book.Book{}, fmt.Errorf("building update query: %w", err)
	}
	r.logQuery(ctx, "Replace", query)

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return book.Book{}, fmt.Errorf("updating book %d: %w", b.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return book.Book{}, fmt.Errorf("updating book %d: rows affected: %w", b.ID, err)
	}
	if n == 0 {
		return book.Book{}, fmt.Errorf("book %d: %w", b.ID, domain.ErrNotFound)
	}
	return b, nil
}

// record maps the mutable columns of b. The ID column is never written.
func (r *BookRepository) record(b book.Book) goqu.Record {
	return goqu.Record{
		colTitle:         b.Title,
		colAuthor:        b.Author,
		colPrice:         b.Price,
		colPublishedDate: r.dateValue(b.PublishedDate),
		colGenre:         b.Genre,
	}
}

// dateValue converts d to a driver argument: NULL when unset, a UTC midnight
// time for PostgreSQL DATE columns, and ISO text for SQLite.
func (r *BookRepository) dateValue(d book.Date) any {
	if d.IsZero() {
		return nil
	}
	if r.db.postgres {
		return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	}
	return d.String()
}

func (r *BookRepository) logQuery(ctx context.Context, op, query string) {
	r.db.logger.DebugContext(ctx, "executing sql",
		slog.String("operation", "sqlstore."+op),
		slog.String("query", query),
	)
}
