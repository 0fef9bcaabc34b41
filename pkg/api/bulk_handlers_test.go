package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkCreate_PartialSuccess(t *testing.T) {
	a, store := newTestAPI(t)

	rr := doRequest(a, http.MethodPost, "/comics/bulk", []map[string]any{
		{"title": "A", "author": "B", "year": 2000},
		{"author": "C"},
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeBody[BulkCreateResponse](t, rr)
	assert.Equal(t, 1, resp.AddedCount)
	assert.Equal(t, 1, resp.FailedCount)
	require.Len(t, resp.AddedComics, 1)
	assert.Equal(t, 4, resp.AddedComics[0].ID)
	require.Len(t, resp.FailedComics, 1)
	assert.Equal(t, "C", resp.FailedComics[0].Comic.Author)
	assert.Contains(t, resp.FailedComics[0].Reason, "missing required fields")
	assert.Equal(t, 4, store.Count())
}

func TestBulkCreate_ConsecutiveIDs(t *testing.T) {
	a, _ := newTestAPI(t)

	rr := doRequest(a, http.MethodPost, "/comics/bulk", []map[string]any{
		{"title": "One", "author": "X", "year": 2001},
		{"title": "Two", "author": "X", "year": 2002},
		{"title": "Three", "author": "X", "year": 2003},
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeBody[BulkCreateResponse](t, rr)
	require.Len(t, resp.AddedComics, 3)
	for i, want := range []int{4, 5, 6} {
		assert.Equal(t, want, resp.AddedComics[i].ID)
	}
}

func TestBulkCreate_RejectsNonArrayBody(t *testing.T) {
	a, store := newTestAPI(t)

	for _, body := range []string{`{"title":"A"}`, `"just a string"`, `[]`, ``} {
		req := httptest.NewRequest(http.MethodPost, "/comics/bulk", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		a.Handler().ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "invalid_body", resp.Error, "body %q", body)
	}
	assert.Equal(t, 3, store.Count())
}

func TestBulkDelete(t *testing.T) {
	a, store := newTestAPI(t)

	rr := doRequest(a, http.MethodDelete, "/comics/bulk", map[string]any{
		"ids": []any{1, "2", 99},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[BulkDeleteResponse](t, rr)
	assert.Equal(t, 2, resp.DeletedCount)
	assert.Equal(t, 1, resp.NotFoundCount)
	require.Len(t, resp.NotFoundIDs, 1)
	assert.Equal(t, 99, resp.NotFoundIDs[0].Val)
	assert.Equal(t, 1, store.Count())
}

func TestBulkDelete_DuplicateID(t *testing.T) {
	a, _ := newTestAPI(t)

	rr := doRequest(a, http.MethodDelete, "/comics/bulk", map[string]any{
		"ids": []any{2, 2},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[BulkDeleteResponse](t, rr)
	assert.Equal(t, 1, resp.DeletedCount)
	assert.Equal(t, 1, resp.NotFoundCount)
}

func TestBulkDelete_EchoesUnparseableIDs(t *testing.T) {
	a, _ := newTestAPI(t)

	rr := doRequest(a, http.MethodDelete, "/comics/bulk", map[string]any{
		"ids": []any{"abc"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"notFoundIds":["abc"]`)
}

func TestBulkDelete_RejectsMissingOrEmptyIDs(t *testing.T) {
	a, store := newTestAPI(t)

	for _, body := range []string{`{}`, `{"ids": []}`, `{"ids": "1,2"}`, `[1,2]`} {
		req := httptest.NewRequest(http.MethodDelete, "/comics/bulk", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		a.Handler().ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
	assert.Equal(t, 3, store.Count())
}
