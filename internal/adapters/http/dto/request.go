package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
)

// validate is shared; *validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(tagISODate, isISODate)
	_ = v.RegisterValidation(tagCents, hasCents)
	return v
}

// tagCents accepts amounts with at most two decimal places. Together with
// lt=10000000000 it matches the NUMERIC(12, 2) price column.
const tagCents = "cents"

func hasCents(fl validator.FieldLevel) bool {
	s := strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
	_, frac, _ := strings.Cut(s, ".")
	return len(frac) <= 2
}

// tagISODate accepts "" (no date) or a YYYY-MM-DD calendar date.
const tagISODate = "isodate"

func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := book.ParseDate(s)
	return err == nil
}

// BookRequest is the body of create and full-update requests. Every field is
// optional; an omitted field takes its zero value. A body "id" is ignored.
type BookRequest struct {
	Title         string  `json:"title" validate:"max=255"`
	Author        string  `json:"author" validate:"max=255"`
	Price         float64 `json:"price" validate:"gte=0,lt=10000000000,cents"`
	PublishedDate *string `json:"publishedDate" validate:"omitnil,isodate"`
	Genre         string  `json:"genre" validate:"max=255"`
}

// Validate checks field constraints.
// Returns a *domain.ValidationError if any checks fail.
func (r *BookRequest) Validate() error {
	return toValidationError(validate.Struct(r))
}

// ToBook maps the request to a domain Book. Call Validate first.
func (r *BookRequest) ToBook() book.Book {
	return book.Book{
		Title:         r.Title,
		Author:        r.Author,
		Price:         r.Price,
		PublishedDate: parseDate(r.PublishedDate),
		Genre:         r.Genre,
	}
}

// PatchBookRequest is the body of a partial update. A field that is missing
// or JSON null is left unchanged; any other value, including "", overwrites.
type PatchBookRequest struct {
	Title         *string  `json:"title" validate:"omitnil,max=255"`
	Author        *string  `json:"author" validate:"omitnil,max=255"`
	Price         *float64 `json:"price" validate:"omitnil,gte=0,lt=10000000000,cents"`
	PublishedDate *string  `json:"publishedDate" validate:"omitnil,isodate"`
	Genre         *string  `json:"genre" validate:"omitnil,max=255"`
}

// Validate checks constraints on the fields that are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *PatchBookRequest) Validate() error {
	return toValidationError(validate.Struct(r))
}

// ToPatch maps the request to a domain Patch. Call Validate first.
func (r *PatchBookRequest) ToPatch() book.Patch {
	var p book.Patch
	if r.Title != nil {
		p.Title = book.Set(*r.Title)
	}
	if r.Author != nil {
		p.Author = book.Set(*r.Author)
	}
	if r.Price != nil {
		p.Price = book.Set(*r.Price)
	}
	if r.PublishedDate != nil {
		p.PublishedDate = book.Set(parseDate(r.PublishedDate))
	}
	if r.Genre != nil {
		p.Genre = book.Set(*r.Genre)
	}
	return p
}

// BookRequests is the body of a bulk create.
type BookRequests []BookRequest

// Validate checks every element and prefixes field names with the index.
func (rs BookRequests) Validate() error {
	fields := make(map[string]string)
	for i := range rs {
		err := rs[i].Validate()
		if err == nil {
			continue
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for f, msg := range verr.Fields {
			fields[fmt.Sprintf("[%d].%s", i, f)] = msg
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToBooks maps every element to a domain Book.
func (rs BookRequests) ToBooks() []book.Book {
	books := make([]book.Book, len(rs))
	for i := range rs {
		books[i] = rs[i].ToBook()
	}
	return books
}

// parseDate converts an already validated date string. An empty string
// yields the zero Date, which clears the stored date.
func parseDate(s *string) book.Date {
	if s == nil || *s == "" {
		return book.Date{}
	}
	d, err := book.ParseDate(*s)
	if err != nil {
		return book.Date{}
	}
	return d
}

// toValidationError converts validator output into a domain error keyed by
// JSON field name.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case tagCents:
		return "must have at most two decimal places"
	case tagISODate:
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
