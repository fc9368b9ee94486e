package model

// Book represents a single book record in the library.
//
// JSON keys are capitalized to stay compatible with library files written
// by earlier versions of the tracker.
type Book struct {
	// Title is the display title and the de facto lookup key. Titles are
	// not unique; lookups resolve to the first match in library order.
	Title string `json:"Title" db:"title"`

	// Author is the book's author.
	Author string `json:"Author" db:"author"`

	// Year is the publication year. Any integer is accepted at the model
	// level; front-ends clamp input to 0-9999 for display.
	Year int `json:"Year" db:"year"`

	// Genre is the book's genre.
	Genre string `json:"Genre" db:"genre"`

	// Read indicates whether the book has been read.
	Read bool `json:"Read" db:"read"`
}

// Status returns the read status label shown in tables.
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}

	return "Unread"
}
