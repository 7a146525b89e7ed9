package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/mocks"
)

var errStorage = errors.New("storage failure")

func newBookHandler(t *testing.T) (*handlers.BookHandler, *mocks.MockBookService) {
	t.Helper()
	svc := mocks.NewMockBookService(t)
	h := handlers.NewBookHandler(svc, config.PaginationConfig{DefaultSize: 10, MaxSize: 100}, 1<<20)
	return h, svc
}

// --- ListBooks ---

func TestListBooks_DefaultsAndHeaders(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	req0 := page.Request{Number: 0, Size: 10}
	svc.EXPECT().ListBooks(mock.Anything, req0).
		Return(page.NewResult(req0, []book.Book{validBook()}, 42), nil)

	rec := httptest.NewRecorder()
	h.ListBooks(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("X-Total-Count"); got != "42" {
		t.Errorf("X-Total-Count = %q, want 42", got)
	}
	if got := rec.Header().Get("X-Page"); got != "0" {
		t.Errorf("X-Page = %q, want 0", got)
	}
	if got := rec.Header().Get("X-Page-Size"); got != "10" {
		t.Errorf("X-Page-Size = %q, want 10", got)
	}

	items := decodeJSON[[]dto.BookResponse](t, rec)
	if len(items) != 1 || items[0].Title != "1984" {
		t.Errorf("items = %+v", items)
	}
}

func TestListBooks_ExplicitPageAndCappedSize(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	want := page.Request{Number: 3, Size: 100}
	svc.EXPECT().ListBooks(mock.Anything, want).Return(page.NewResult[book.Book](want, nil, 0), nil)

	rec := httptest.NewRecorder()
	h.ListBooks(rec, httptest.NewRequest(http.MethodGet, "/books?page=3&size=5000", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("X-Page-Size"); got != "100" {
		t.Errorf("X-Page-Size = %q, want 100", got)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestListBooks_InvalidQuery(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"page=-1", "size=0", "size=-3", "page=abc", "size=1.5"} {
		t.Run(q, func(t *testing.T) {
			t.Parallel()

			h, _ := newBookHandler(t)
			rec := httptest.NewRecorder()
			h.ListBooks(rec, httptest.NewRequest(http.MethodGet, "/books?"+q, nil))

			requireStatus(t, rec, http.StatusBadRequest)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestListBooks_ServiceError(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().ListBooks(mock.Anything, mock.Anything).Return(page.Result[book.Book]{}, errStorage)

	rec := httptest.NewRecorder()
	h.ListBooks(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- GetBook ---

func TestGetBook(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().GetBook(mock.Anything, int64(1)).Return(validBook(), true, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/books/1", nil), map[string]string{"id": "1"})
	h.GetBook(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BookResponse](t, rec)
	if resp.ID != 1 || resp.PublishedDate == nil || *resp.PublishedDate != "1949-06-08" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().GetBook(mock.Anything, int64(404)).Return(book.Book{}, false, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/books/404", nil), map[string]string{"id": "404"})
	h.GetBook(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetBook_InvalidID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"abc", "0", "-4"} {
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			h, _ := newBookHandler(t)
			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/books/"+id, nil), map[string]string{"id": id})
			h.GetBook(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.id" {
				t.Errorf("errors = %+v, want one path.id entry", resp.Errors)
			}
		})
	}
}

func TestGetBook_Unavailable(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().GetBook(mock.Anything, int64(1)).
		Return(book.Book{}, false, fmt.Errorf("%w: circuit breaker is open", domain.ErrUnavailable))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/books/1", nil), map[string]string{"id": "1"})
	h.GetBook(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- CreateBook ---

func TestCreateBook(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	in := validBook().WithoutID()
	svc.EXPECT().CreateBook(mock.Anything, in).Return(validBook(), nil)

	rec := httptest.NewRecorder()
	body := rawBody(`{"id":999,"title":"1984","author":"George Orwell","price":13.99,` +
		`"publishedDate":"1949-06-08","genre":"Dystopian"}`)
	h.CreateBook(rec, httptest.NewRequest(http.MethodPost, "/books/single", body))

	requireStatus(t, rec, http.StatusCreated)
	if resp := decodeJSON[dto.BookResponse](t, rec); resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestCreateBook_InvalidJSON(t *testing.T) {
	t.Parallel()

	h, _ := newBookHandler(t)
	rec := httptest.NewRecorder()
	h.CreateBook(rec, httptest.NewRequest(http.MethodPost, "/books/single", rawBody(`{"title":`)))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateBook_ValidationError(t *testing.T) {
	t.Parallel()

	h, _ := newBookHandler(t)
	rec := httptest.NewRecorder()
	h.CreateBook(rec, httptest.NewRequest(http.MethodPost, "/books/single", jsonBody(t, map[string]any{"price": -1})))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.price" {
		t.Errorf("errors = %+v, want one body.price entry", resp.Errors)
	}
}

func TestCreateBook_BodyTooLarge(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBookService(t)
	h := handlers.NewBookHandler(svc, config.PaginationConfig{DefaultSize: 10, MaxSize: 100}, 64)

	rec := httptest.NewRecorder()
	body := rawBody(`{"title":"` + strings.Repeat("x", 200) + `"}`)
	h.CreateBook(rec, httptest.NewRequest(http.MethodPost, "/books/single", body))

	requireStatus(t, rec, http.StatusRequestEntityTooLarge)
}

// --- CreateBooks ---

func TestCreateBooks(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	in := []book.Book{{Title: "A"}, {Title: "B"}}
	svc.EXPECT().CreateBooks(mock.Anything, in).Return([]book.Book{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, nil)

	rec := httptest.NewRecorder()
	h.CreateBooks(rec, httptest.NewRequest(http.MethodPost, "/books/bulk", rawBody(`[{"title":"A"},{"title":"B","id":7}]`)))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[[]dto.BookResponse](t, rec)
	if len(resp) != 2 || resp[1].ID != 2 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateBooks_ValidationErrorNamesIndex(t *testing.T) {
	t.Parallel()

	h, _ := newBookHandler(t)
	rec := httptest.NewRecorder()
	h.CreateBooks(rec, httptest.NewRequest(http.MethodPost, "/books/bulk", rawBody(`[{"title":"A"},{"price":-2}]`)))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body[1].price" {
		t.Errorf("errors = %+v, want one body[1].price entry", resp.Errors)
	}
}

func TestCreateBooks_ObjectInsteadOfArray(t *testing.T) {
	t.Parallel()

	h, _ := newBookHandler(t)
	rec := httptest.NewRecorder()
	h.CreateBooks(rec, httptest.NewRequest(http.MethodPost, "/books/bulk", rawBody(`{"title":"A"}`)))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateBook ---

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().UpdateBook(mock.Anything, int64(1), book.Book{Title: "Spring Boot Advanced"}).
		Return(book.Book{ID: 1, Title: "Spring Boot Advanced"}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPut, "/books/1", rawBody(`{"title":"Spring Boot Advanced"}`)),
		map[string]string{"id": "1"},
	)
	h.UpdateBook(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BookResponse](t, rec)
	if resp.Title != "Spring Boot Advanced" || resp.PublishedDate != nil {
		t.Errorf("resp = %+v", resp)
	}
}

func TestUpdateBook_NotFound(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().UpdateBook(mock.Anything, int64(9), mock.Anything).
		Return(book.Book{}, fmt.Errorf("updating book 9: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPut, "/books/9", rawBody(`{}`)), map[string]string{"id": "9"})
	h.UpdateBook(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- PatchBook ---

func TestPatchBook(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	patched := validBook()
	patched.Price = 9.99
	svc.EXPECT().PatchBook(mock.Anything, int64(1), book.Patch{Price: book.Set(9.99)}).Return(patched, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/books/1", rawBody(`{"price":9.99,"title":null}`)),
		map[string]string{"id": "1"},
	)
	h.PatchBook(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.BookResponse](t, rec); resp.Price != 9.99 || resp.Title != "1984" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestPatchBook_PresentEmptyString(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().PatchBook(mock.Anything, int64(1), book.Patch{Genre: book.Set("")}).
		Return(book.Book{ID: 1, Title: "1984"}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/books/1", rawBody(`{"genre":""}`)), map[string]string{"id": "1"})
	h.PatchBook(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestPatchBook_NotFound(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().PatchBook(mock.Anything, int64(5), mock.Anything).Return(book.Book{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/books/5", rawBody(`{"price":1}`)), map[string]string{"id": "5"})
	h.PatchBook(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestPatchBook_InvalidDate(t *testing.T) {
	t.Parallel()

	h, _ := newBookHandler(t)
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/books/1", rawBody(`{"publishedDate":"June 1949"}`)),
		map[string]string{"id": "1"},
	)
	h.PatchBook(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteBook ---

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().DeleteBook(mock.Anything, int64(1)).Return(true, nil).Once()
	svc.EXPECT().DeleteBook(mock.Anything, int64(1)).Return(false, nil).Once()

	newReq := func() *http.Request {
		return withChiParams(httptest.NewRequest(http.MethodDelete, "/books/1", nil), map[string]string{"id": "1"})
	}

	rec := httptest.NewRecorder()
	h.DeleteBook(rec, newReq())
	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.DeleteBook(rec, newReq())
	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteBook_ServiceError(t *testing.T) {
	t.Parallel()

	h, svc := newBookHandler(t)
	svc.EXPECT().DeleteBook(mock.Anything, int64(1)).Return(false, errStorage)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/books/1", nil), map[string]string{"id": "1"})
	h.DeleteBook(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	if resp := decodeJSON[dto.ErrorResponse](t, rec); strings.Contains(resp.Detail, errStorage.Error()) {
		t.Errorf("detail leaks internal error: %q", resp.Detail)
	}
}
