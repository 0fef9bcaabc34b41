// Package api provides the REST API over the comic catalog store.
//
// Endpoints:
//
//	GET    /health                   - Server health check
//	GET    /status                   - Server status and catalog size
//	GET    /comics                   - List comics with filters and pagination
//	POST   /comics                   - Create a comic
//	GET    /comics/{id}              - Get a specific comic
//	PUT    /comics/{id}              - Update an existing comic
//	DELETE /comics/{id}              - Delete a comic
//	POST   /comics/bulk              - Create multiple comics, per-item results
//	DELETE /comics/bulk              - Delete multiple comics, per-item results
//	GET    /stats/comics             - Aggregate catalog statistics
//	GET    /search/comics/{keyword}  - Case-insensitive keyword search
//
// Usage:
//
//	store := storage.NewInMemoryCatalogStore(storage.SeedComics())
//	srv := api.New(4270, store, api.WithLogger(log))
//	srv.Start()
//	defer srv.Stop()
//
// Example curl commands:
//
//	# Create a comic
//	curl -X POST http://localhost:4270/comics \
//	  -H "Content-Type: application/json" \
//	  -d '{"title": "Bone", "author": "Jeff Smith", "year": 1991}'
//
//	# List comics by author, two per page
//	curl 'http://localhost:4270/comics?author=miller&limit=2&page=1'
//
//	# Delete several comics at once
//	curl -X DELETE http://localhost:4270/comics/bulk \
//	  -H "Content-Type: application/json" \
//	  -d '{"ids": [1, "2", 99]}'
package api
