// Package core provides the business logic layer for shelfr.
//
// This package contains all library functionality separated from UI
// concerns. Functions here handle validation and lookup and orchestrate
// persistence; rendering belongs to the cli and web packages.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Title matching is always case-insensitive and hits the first match
//     in insertion order
//   - Stored books are never reordered; sorting happens on copies at
//     presentation time
//
// # Library and LibraryManager
//
// [Library] is the plain in-memory collection with the whole rule set:
// validation on [Library.Add], first-match lookup, the keep-on-blank edit
// policy of [Library.Edit], and the lazy [Library.Search].
//
// [LibraryManager] wraps a Library with a [store.Store] and a mutex. Every
// mutation writes the full library through to the store; a failed write
// surfaces as a [PersistenceError] while the in-memory change stays
// applied. Both front-ends share one manager instance.
//
// # Errors
//
// Operations report failures through three types, so callers can present
// them distinctly: [ValidationError] for rejected input, [NotFoundError]
// for title lookups that matched nothing, and [PersistenceError] for
// storage writes that failed.
package core
