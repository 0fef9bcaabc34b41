package storage

import (
	"slices"
	"strconv"
	"sync"

	"github.com/getcomicd/comicd/pkg/comic"
)

// InMemoryCatalogStore is a thread-safe in-memory implementation of
// CatalogStore. Comics are held in insertion order.
type InMemoryCatalogStore struct {
	mu     sync.RWMutex
	comics []comic.Comic
	seed   []comic.Comic
}

// NewInMemoryCatalogStore creates a store pre-populated with the given
// seed comics. Reset restores this exact state.
func NewInMemoryCatalogStore(seed []comic.Comic) *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		comics: slices.Clone(seed),
		seed:   slices.Clone(seed),
	}
}

// nextID returns the next identifier: the current maximum plus one.
// Callers must hold the lock.
func (s *InMemoryCatalogStore) nextID() int {
	max := 0
	for _, c := range s.comics {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// indexOf returns the position of the comic with the given identifier, or
// -1. Callers must hold the lock.
func (s *InMemoryCatalogStore) indexOf(id int) int {
	for i, c := range s.comics {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// List returns the comics matching the filter, in original relative order,
// sliced to the requested page.
func (s *InMemoryCatalogStore) List(f Filter, p Page) Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]comic.Comic, 0, len(s.comics))
	for _, c := range s.comics {
		if matchesFilter(c, f) {
			matched = append(matched, c)
		}
	}

	if p.Number <= 0 {
		p.Number = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}

	total := len(matched)
	totalPages := (total + p.Limit - 1) / p.Limit

	start := (p.Number - 1) * p.Limit
	end := start + p.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Listing{
		Comics:      matched[start:end],
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: p.Number,
	}
}

// Get retrieves a comic by identifier.
func (s *InMemoryCatalogStore) Get(id int) (comic.Comic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.comics[i], nil
	}
	return comic.Comic{}, ErrNotFound
}

// Create validates the payload, assigns the next identifier and appends
// the new comic.
func (s *InMemoryCatalogStore) Create(p comic.CreatePayload) (comic.Comic, error) {
	if err := p.Validate(); err != nil {
		return comic.Comic{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := p.Comic(s.nextID())
	s.comics = append(s.comics, c)
	return c, nil
}

// Update applies the provided fields to the comic with the given
// identifier. Omitted fields keep their prior values; the identifier is
// never altered.
func (s *InMemoryCatalogStore) Update(id int, p comic.UpdatePayload) (comic.Comic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return comic.Comic{}, ErrNotFound
	}
	p.ApplyTo(&s.comics[i])
	return s.comics[i], nil
}

// Delete removes the comic with the given identifier and returns its
// snapshot.
func (s *InMemoryCatalogStore) Delete(id int) (comic.Comic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return comic.Comic{}, ErrNotFound
	}
	removed := s.comics[i]
	s.comics = slices.Delete(s.comics, i, i+1)
	return removed, nil
}

// BulkCreate processes each payload independently in input order. Invalid
// payloads are collected with a reason and never abort the batch.
// Identifiers are recomputed after every insertion, so N valid payloads in
// one batch receive N consecutive identifiers.
func (s *InMemoryCatalogStore) BulkCreate(payloads []comic.CreatePayload) BulkCreateResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := BulkCreateResult{
		Added:  []comic.Comic{},
		Failed: []FailedCreate{},
	}
	for _, p := range payloads {
		if err := p.Validate(); err != nil {
			result.Failed = append(result.Failed, FailedCreate{
				Comic:  p,
				Reason: err.Error(),
			})
			continue
		}
		c := p.Comic(s.nextID())
		s.comics = append(s.comics, c)
		result.Added = append(result.Added, c)
	}
	return result
}

// BulkDelete processes each identifier independently in input order.
// Matches are removed immediately, so a duplicate identifier later in the
// input reports not-found.
func (s *InMemoryCatalogStore) BulkDelete(ids []comic.FlexInt) BulkDeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := BulkDeleteResult{
		Deleted:  []comic.Comic{},
		NotFound: []comic.FlexInt{},
	}
	for _, id := range ids {
		if !id.Set {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		i := s.indexOf(id.Val)
		if i < 0 {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		result.Deleted = append(result.Deleted, s.comics[i])
		s.comics = slices.Delete(s.comics, i, i+1)
	}
	return result
}

// Stats computes aggregate statistics over the whole catalog. On an empty
// catalog it returns zero counts, empty maps and nil oldest/newest.
func (s *InMemoryCatalogStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalComics:     len(s.comics),
		PublisherCounts: map[string]int{},
		AuthorCounts:    map[string]int{},
		GenreCounts:     map[string]int{},
	}

	for i := range s.comics {
		c := s.comics[i]
		stats.PublisherCounts[c.Publisher]++
		stats.AuthorCounts[c.Author]++
		stats.GenreCounts[c.Genre]++

		// Strict comparisons so ties keep the first occurrence.
		if stats.Oldest == nil || c.Year < stats.Oldest.Year {
			snapshot := c
			stats.Oldest = &snapshot
		}
		if stats.Newest == nil || c.Year > stats.Newest.Year {
			snapshot := c
			stats.Newest = &snapshot
		}
	}

	stats.UniquePublishers = len(stats.PublisherCounts)
	stats.UniqueAuthors = len(stats.AuthorCounts)
	stats.UniqueGenres = len(stats.GenreCounts)
	return stats
}

// Search returns the comics whose title, author, publisher, genre or
// description contains the keyword, case-insensitively.
func (s *InMemoryCatalogStore) Search(keyword string) []comic.Comic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []comic.Comic{}
	for _, c := range s.comics {
		if foldContains(c.Title, keyword) ||
			foldContains(c.Author, keyword) ||
			foldContains(c.Publisher, keyword) ||
			foldContains(c.Genre, keyword) ||
			foldContains(c.Description, keyword) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Count returns the number of stored comics.
func (s *InMemoryCatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comics)
}

// Reset restores the store to its seed state.
func (s *InMemoryCatalogStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comics = slices.Clone(s.seed)
}

// matchesFilter reports whether the comic satisfies every provided
// criterion. Text criteria are case-insensitive substring matches; the
// year criterion is exact, and an unparseable year matches nothing.
func matchesFilter(c comic.Comic, f Filter) bool {
	if f.Author != "" && !foldContains(c.Author, f.Author) {
		return false
	}
	if f.Genre != "" && !foldContains(c.Genre, f.Genre) {
		return false
	}
	if f.Publisher != "" && !foldContains(c.Publisher, f.Publisher) {
		return false
	}
	if f.Year != "" {
		year, err := strconv.Atoi(f.Year)
		if err != nil || c.Year != year {
			return false
		}
	}
	return true
}

// Ensure InMemoryCatalogStore implements CatalogStore.
var _ CatalogStore = (*InMemoryCatalogStore)(nil)
