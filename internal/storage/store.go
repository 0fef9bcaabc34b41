package storage

import (
	"errors"

	"github.com/getcomicd/comicd/pkg/comic"
)

// ErrNotFound is returned when no comic has the requested identifier.
var ErrNotFound = errors.New("comic not found")

// Pagination defaults applied when the client provides no usable values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Filter selects comics for listing. Text fields match as case-insensitive
// substrings; Year matches exactly. All provided criteria are ANDed.
// Year is kept as text so that an unparseable value matches nothing instead
// of failing the request.
type Filter struct {
	Author    string
	Genre     string
	Publisher string
	Year      string
}

// Page is a pagination window. Non-positive values fall back to the
// defaults.
type Page struct {
	Number int
	Limit  int
}

// Listing is the result of a filtered, paginated list.
type Listing struct {
	Comics      []comic.Comic `json:"data"`
	TotalItems  int           `json:"totalItems"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// FailedCreate reports one payload rejected during a bulk create, echoing
// the offending input together with the reason.
type FailedCreate struct {
	Comic  comic.CreatePayload `json:"comic"`
	Reason string              `json:"reason"`
}

// BulkCreateResult reports per-item outcomes of a bulk create.
type BulkCreateResult struct {
	Added  []comic.Comic  `json:"addedComics"`
	Failed []FailedCreate `json:"failedComics"`
}

// BulkDeleteResult reports per-item outcomes of a bulk delete. NotFound
// echoes the identifiers that matched nothing, in input order.
type BulkDeleteResult struct {
	Deleted  []comic.Comic   `json:"deletedComics"`
	NotFound []comic.FlexInt `json:"notFoundIds"`
}

// Stats summarizes the catalog. Counts are by exact text value; Oldest and
// Newest resolve ties to the first occurrence in sequence order. Both are
// nil when the catalog is empty.
type Stats struct {
	TotalComics      int            `json:"totalComics"`
	UniquePublishers int            `json:"uniquePublishers"`
	UniqueAuthors    int            `json:"uniqueAuthors"`
	UniqueGenres     int            `json:"uniqueGenres"`
	PublisherCounts  map[string]int `json:"publisherCounts"`
	AuthorCounts     map[string]int `json:"authorCounts"`
	GenreCounts      map[string]int `json:"genreCounts"`
	Oldest           *comic.Comic   `json:"oldestComic"`
	Newest           *comic.Comic   `json:"newestComic"`
}

// CatalogStore defines the contract for comic storage backends.
type CatalogStore interface {
	// List returns the comics matching the filter, sliced to the page.
	List(f Filter, p Page) Listing

	// Get retrieves a comic by identifier. Returns ErrNotFound if absent.
	Get(id int) (comic.Comic, error)

	// Create validates the payload, assigns the next identifier and
	// appends the comic. Returns a *comic.ValidationError on missing
	// required fields.
	Create(p comic.CreatePayload) (comic.Comic, error)

	// Update applies the provided fields to an existing comic. Returns
	// ErrNotFound if absent.
	Update(id int, p comic.UpdatePayload) (comic.Comic, error)

	// Delete removes a comic and returns its snapshot. Returns
	// ErrNotFound if absent.
	Delete(id int) (comic.Comic, error)

	// BulkCreate processes each payload independently in input order.
	BulkCreate(payloads []comic.CreatePayload) BulkCreateResult

	// BulkDelete processes each identifier independently in input order.
	// A duplicate of an already-removed identifier reports not-found.
	BulkDelete(ids []comic.FlexInt) BulkDeleteResult

	// Stats computes aggregate statistics over the whole catalog.
	Stats() Stats

	// Search returns the comics whose title, author, publisher, genre or
	// description contains the keyword, case-insensitively.
	Search(keyword string) []comic.Comic

	// Count returns the number of stored comics.
	Count() int

	// Reset restores the store to its seed state.
	Reset()
}
