// Package store persists the book library.
//
// The package defines the [Store] interface, which every backend implements
// with the same whole-library contract: [Store.Load] reads the complete
// collection in insertion order and [Store.Save] rewrites it from scratch.
// Mutations are never applied in place.
//
// # Backends
//
// Three backends are available, selected through [model.StorageConfig]:
//   - [JSONFile] keeps the library as one indented JSON array (the default,
//     compatible with hand-edited files)
//   - [Bolt] keeps it in an embedded bbolt key-value database
//   - [SQLite] keeps it in a single-table SQLite database
//
// # Opening a Store
//
// Use [Open] to construct the backend named by the configuration:
//
//	st, err := store.Open(cfg.Storage)
//	if err != nil {
//		return err
//	}
//	defer st.Close()
//
// A missing or unreadable library yields an empty collection rather than an
// error, so a first run needs no setup.
package store
