// Route registration for the catalog API.

package api

import (
	"net/http"
)

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Health and status
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("GET /status", a.handleStatus)

	// Comic CRUD. The literal /comics/bulk patterns take precedence over
	// the {id} wildcards.
	mux.HandleFunc("GET /comics", a.handleListComics)
	mux.HandleFunc("POST /comics", a.handleCreateComic)
	mux.HandleFunc("POST /comics/bulk", a.handleBulkCreateComics)
	mux.HandleFunc("DELETE /comics/bulk", a.handleBulkDeleteComics)
	mux.HandleFunc("GET /comics/{id}", a.handleGetComic)
	mux.HandleFunc("PUT /comics/{id}", a.handleUpdateComic)
	mux.HandleFunc("DELETE /comics/{id}", a.handleDeleteComic)

	// Aggregates and search
	mux.HandleFunc("GET /stats/comics", a.handleGetStats)
	mux.HandleFunc("GET /search/comics/{keyword}", a.handleSearchComics)
}
