// Package storage provides the catalog store abstraction and its in-memory
// implementation.
//
// Key types:
//
//   - CatalogStore: interface defining every read and write operation over
//     the comic collection
//   - InMemoryCatalogStore: thread-safe implementation backed by an ordered
//     slice, preserving insertion order
//
// The store owns identifier assignment: the next identifier is always the
// current maximum plus one, recomputed from the live sequence. Deleting the
// highest-identifier record therefore makes that identifier available again.
// This is observable behavior and deliberate.
//
// The InMemoryCatalogStore is safe for concurrent use; all mutations are
// serialized behind a single mutex.
package storage
