package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/getcomicd/comicd/internal/storage"
	"github.com/getcomicd/comicd/pkg/comic"
)

// parseComicID parses the {id} path segment. A non-numeric identifier can
// never match a comic, so callers treat a failure as not-found.
func parseComicID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

// handleListComics handles GET /comics with optional filters and
// pagination.
func (a *API) handleListComics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := storage.Filter{
		Author:    q.Get("author"),
		Genre:     q.Get("genre"),
		Publisher: q.Get("publisher"),
		Year:      q.Get("year"),
	}

	page := storage.Page{Number: storage.DefaultPage, Limit: storage.DefaultLimit}
	if n, ok := parsePositiveInt(q.Get("page")); ok {
		page.Number = n
	}
	if n, ok := parsePositiveInt(q.Get("limit")); ok {
		page.Limit = n
	}

	writeJSON(w, http.StatusOK, a.store.List(filter, page))
}

// handleGetComic handles GET /comics/{id}.
func (a *API) handleGetComic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseComicID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", ErrMsgNotFound)
		return
	}

	c, err := a.store.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", sanitizeError(err, a.log, "get comic", "id", id))
		return
	}
	writeJSON(w, http.StatusOK, ComicResponse{Data: c})
}

// handleCreateComic handles POST /comics.
func (a *API) handleCreateComic(w http.ResponseWriter, r *http.Request) {
	var payload comic.CreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", sanitizeJSONError(err, a.log))
		return
	}

	created, err := a.store.Create(payload)
	if err != nil {
		var verr *comic.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "validation_error", verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", sanitizeError(err, a.log, "create comic"))
		return
	}
	writeJSON(w, http.StatusCreated, MessageComicResponse{
		Message: "Comic created successfully",
		Data:    created,
	})
}

// handleUpdateComic handles PUT /comics/{id}. An empty body is a valid
// no-op update.
func (a *API) handleUpdateComic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseComicID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", ErrMsgNotFound)
		return
	}

	var payload comic.UpdatePayload
	if err := decodeOptionalJSONBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", sanitizeJSONError(err, a.log))
		return
	}

	updated, err := a.store.Update(id, payload)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", sanitizeError(err, a.log, "update comic", "id", id))
		return
	}
	writeJSON(w, http.StatusOK, MessageComicResponse{
		Message: "Comic updated successfully",
		Data:    updated,
	})
}

// handleDeleteComic handles DELETE /comics/{id}.
func (a *API) handleDeleteComic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseComicID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", ErrMsgNotFound)
		return
	}

	removed, err := a.store.Delete(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", sanitizeError(err, a.log, "delete comic", "id", id))
		return
	}
	writeJSON(w, http.StatusOK, MessageComicResponse{
		Message: "Comic deleted successfully",
		Data:    removed,
	})
}
