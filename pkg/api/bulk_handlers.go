package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getcomicd/comicd/pkg/comic"
)

// handleBulkCreateComics handles POST /comics/bulk. The batch only fails as
// a whole on structurally invalid input; per-item validation failures are
// reported alongside the successes.
func (a *API) handleBulkCreateComics(w http.ResponseWriter, r *http.Request) {
	var payloads []comic.CreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be a non-empty array of comics")
		return
	}
	if len(payloads) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be a non-empty array of comics")
		return
	}

	result := a.store.BulkCreate(payloads)
	writeJSON(w, http.StatusCreated, BulkCreateResponse{
		Message:      fmt.Sprintf("Bulk create completed: %d added, %d failed", len(result.Added), len(result.Failed)),
		AddedCount:   len(result.Added),
		FailedCount:  len(result.Failed),
		AddedComics:  result.Added,
		FailedComics: result.Failed,
	})
}

// handleBulkDeleteComics handles DELETE /comics/bulk. Identifiers are
// processed independently; ones that match nothing are echoed back in
// notFoundIds.
func (a *API) handleBulkDeleteComics(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "ids must be a non-empty array of comic identifiers")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_body", "ids must be a non-empty array of comic identifiers")
		return
	}

	result := a.store.BulkDelete(req.IDs)
	writeJSON(w, http.StatusOK, BulkDeleteResponse{
		Message:       fmt.Sprintf("Bulk delete completed: %d deleted, %d not found", len(result.Deleted), len(result.NotFound)),
		DeletedCount:  len(result.Deleted),
		NotFoundCount: len(result.NotFound),
		DeletedComics: result.Deleted,
		NotFoundIDs:   result.NotFound,
	})
}
