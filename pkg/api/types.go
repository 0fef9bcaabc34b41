package api

import (
	"github.com/getcomicd/comicd/internal/storage"
	"github.com/getcomicd/comicd/pkg/comic"
)

// ErrorResponse is the standard error body. Error carries a stable code;
// Message is human-readable.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is a simple health check response.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime int    `json:"uptime,omitempty"`
}

// StatusResponse reports server and catalog state.
type StatusResponse struct {
	Status     string `json:"status"`
	Port       int    `json:"port"`
	Uptime     int    `json:"uptime"`
	ComicCount int    `json:"comicCount"`
	Version    string `json:"version,omitempty"`
}

// ComicResponse wraps a single comic.
type ComicResponse struct {
	Data comic.Comic `json:"data"`
}

// MessageComicResponse wraps a single comic with an outcome message.
type MessageComicResponse struct {
	Message string      `json:"message"`
	Data    comic.Comic `json:"data"`
}

// BulkCreateResponse reports per-item outcomes of a bulk create.
type BulkCreateResponse struct {
	Message      string                 `json:"message"`
	AddedCount   int                    `json:"addedCount"`
	FailedCount  int                    `json:"failedCount"`
	AddedComics  []comic.Comic          `json:"addedComics"`
	FailedComics []storage.FailedCreate `json:"failedComics"`
}

// BulkDeleteResponse reports per-item outcomes of a bulk delete.
type BulkDeleteResponse struct {
	Message       string          `json:"message"`
	DeletedCount  int             `json:"deletedCount"`
	NotFoundCount int             `json:"notFoundCount"`
	DeletedComics []comic.Comic   `json:"deletedComics"`
	NotFoundIDs   []comic.FlexInt `json:"notFoundIds"`
}

// SearchResponse lists keyword matches with a count.
type SearchResponse struct {
	Message string        `json:"message"`
	Count   int           `json:"count"`
	Data    []comic.Comic `json:"data"`
}

// BulkDeleteRequest is the body of DELETE /comics/bulk.
type BulkDeleteRequest struct {
	IDs []comic.FlexInt `json:"ids"`
}
