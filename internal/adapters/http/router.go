// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given; nil entries are skipped.
// Unknown routes and unsupported methods answer with problem details like
// every other error.
func NewRouter(
	bookHandler *handlers.BookHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, "no route matches "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	r.Get("/health", healthHandler.Liveness)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/books", bookHandler.ListBooks)
	r.Post("/books/single", bookHandler.CreateBook)
	r.Post("/books/bulk", bookHandler.CreateBooks)

	r.Get("/books/{id}", bookHandler.GetBook)
	r.Put("/books/{id}", bookHandler.UpdateBook)
	r.Patch("/books/{id}", bookHandler.PatchBook)
	r.Delete("/books/{id}", bookHandler.DeleteBook)

	return r
}
