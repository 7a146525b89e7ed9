// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
)

// BookResponse represents a single book in HTTP responses. An unset
// publication date is encoded as null.
type BookResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         float64 `json:"price"`
	PublishedDate *string `json:"publishedDate"`
	Genre         string  `json:"genre"`
}

// ToBookResponse converts a domain Book to an HTTP response DTO.
func ToBookResponse(b book.Book) BookResponse {
	resp := BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  b.Price,
		Genre:  b.Genre,
	}
	if !b.PublishedDate.IsZero() {
		s := b.PublishedDate.String()
		resp.PublishedDate = &s
	}
	return resp
}

// ToBookResponses converts a slice of domain Books. The result is never nil,
// so an empty page encodes as [] rather than null.
func ToBookResponses(books []book.Book) []BookResponse {
	items := make([]BookResponse, len(books))
	for i := range books {
		items[i] = ToBookResponse(books[i])
	}
	return items
}

// HealthResponse is the body of the liveness and readiness endpoints. Checks
// maps each dependency to "ok" or its failure message and is omitted for
// liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
