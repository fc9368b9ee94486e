// Package model defines the data structures used throughout shelfr.
//
// This package contains the core domain models shared by the storage layer
// and both front-ends. Models carry json tags matching the on-disk library
// format and db tags for the sqlite backend.
//
// # Book
//
// The [Book] struct represents one record of the library:
//
//	type Book struct {
//	    Title  string // Display title, first-match lookup key
//	    Author string // Author name
//	    Year   int    // Publication year
//	    Genre  string // Genre label
//	    Read   bool   // Read / unread flag
//	}
//
// # Config
//
// The [Config] struct holds application configuration loaded from
// config.ini, split into [StorageConfig] (backend selection and backing
// file path) and [WebConfig] (web front-end address and behavior).
package model
