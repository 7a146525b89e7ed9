package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	svc          ports.BookService
	pagination   config.PaginationConfig
	maxBodyBytes int64
}

// NewBookHandler creates a new BookHandler. Pagination defaults and the body
// size cap come from the HTTP layer's configuration; the service never sees
// an unvalidated page request.
func NewBookHandler(svc ports.BookService, pagination config.PaginationConfig, maxBodyBytes int64) *BookHandler {
	return &BookHandler{
		svc:          svc,
		pagination:   pagination,
		maxBodyBytes: maxBodyBytes,
	}
}

// ListBooks handles GET /books?page=&size=.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r, h.pagination)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.ListBooks(r.Context(), req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePageHeaders(w, res.Total, req)
	writeJSON(w, r, http.StatusOK, dto.ToBookResponses(res.Items))
}

// GetBook handles GET /books/{id}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, found, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBookResponse(b))
}

// CreateBook handles POST /books/single.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequest
	if !decodeAndValidate(w, r, h.maxBodyBytes, &req) {
		return
	}

	created, err := h.svc.CreateBook(r.Context(), req.ToBook())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBookResponse(created))
}

// CreateBooks handles POST /books/bulk.
func (h *BookHandler) CreateBooks(w http.ResponseWriter, r *http.Request) {
	var reqs dto.BookRequests
	if !decodeAndValidate(w, r, h.maxBodyBytes, &reqs) {
		return
	}

	created, err := h.svc.CreateBooks(r.Context(), reqs.ToBooks())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBookResponses(created))
}

// UpdateBook handles PUT /books/{id}.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BookRequest
	if !decodeAndValidate(w, r, h.maxBodyBytes, &req) {
		return
	}

	updated, err := h.svc.UpdateBook(r.Context(), id, req.ToBook())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBookResponse(updated))
}

// PatchBook handles PATCH /books/{id}.
func (h *BookHandler) PatchBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PatchBookRequest
	if !decodeAndValidate(w, r, h.maxBodyBytes, &req) {
		return
	}

	patched, err := h.svc.PatchBook(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBookResponse(patched))
}

// DeleteBook handles DELETE /books/{id}. A missing book is a 404, so a
// second delete of the same id fails.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteBook(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !deleted {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
