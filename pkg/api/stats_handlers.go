package api

import (
	"fmt"
	"net/http"
)

// handleGetStats handles GET /stats/comics. An empty catalog yields zero
// counts with null oldest/newest rather than an error.
func (a *API) handleGetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Stats())
}

// handleSearchComics handles GET /search/comics/{keyword}.
func (a *API) handleSearchComics(w http.ResponseWriter, r *http.Request) {
	keyword := r.PathValue("keyword")

	matches := a.store.Search(keyword)
	if len(matches) == 0 {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("No comics found matching %q", keyword))
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{
		Message: fmt.Sprintf("Found %d comic(s) matching %q", len(matches), keyword),
		Count:   len(matches),
		Data:    matches,
	})
}
