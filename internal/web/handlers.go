package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/ibarra/shelfr/internal/application"
	"github.com/ibarra/shelfr/internal/core"
	"github.com/ibarra/shelfr/internal/model"
)

// PageData holds common data for page templates
type PageData struct {
	Title      string
	ActivePage string
	Books      []model.Book
	Book       *model.Book
	Stats      core.Statistics
	SortBy     string
	SearchBy   string
	Query      string
	Searched   bool
	Error      string
	Success    string
}

// APIResponse is a generic API response
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleIndex renders the library table
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, r.URL.Query().Get("sort"), "", "")
}

func (s *Server) renderIndex(w http.ResponseWriter, sortBy, success, errMsg string) {
	key, err := core.ParseSortKey(sortBy)
	if err != nil {
		key = core.SortNone
		sortBy = ""
	}

	data := PageData{
		Title:      "Your Library",
		ActivePage: "library",
		Books:      s.mgr.List(key),
		SortBy:     sortBy,
		Success:    success,
		Error:      errMsg,
	}

	s.render(w, "index.html", data)
}

// handleAddPage renders the add book form
func (s *Server) handleAddPage(w http.ResponseWriter, _ *http.Request) {
	data := PageData{
		Title:      "Add a Book",
		ActivePage: "add",
	}

	s.render(w, "add.html", data)
}

// handleAddSubmit adds a book from the form
func (s *Server) handleAddSubmit(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Title:      "Add a Book",
		ActivePage: "add",
	}

	if err := r.ParseForm(); err != nil {
		data.Error = "❌ Invalid form data."
		s.render(w, "add.html", data)
		return
	}

	year, err := parseFormYear(r.FormValue("year"))
	if err != nil {
		data.Error = "❌ Publication year must be a number."
		s.render(w, "add.html", data)
		return
	}

	book := model.Book{
		Title:  r.FormValue("title"),
		Author: r.FormValue("author"),
		Year:   year,
		Genre:  r.FormValue("genre"),
		Read:   r.FormValue("read") == "on",
	}

	if err := s.mgr.Add(book); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			data.Error = "❌ Please fill in all fields."
		} else {
			log.Printf("Failed to add book: %v", err)
			data.Error = "❌ " + err.Error()
		}

		s.render(w, "add.html", data)
		return
	}

	data.Success = "✅ Book added successfully!"
	s.render(w, "add.html", data)
}

// handleEditPage renders the lookup form, or the edit form once the
// title query names a book
func (s *Server) handleEditPage(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Title:      "Edit a Book",
		ActivePage: "edit",
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		s.render(w, "edit.html", data)
		return
	}

	book, err := s.mgr.Find(title)
	if err != nil {
		data.Error = "❌ Book not found."
		s.render(w, "edit.html", data)
		return
	}

	data.Book = &book
	s.render(w, "edit.html", data)
}

// handleEditSubmit applies the edit form. Cleared text fields keep the
// stored values; the read checkbox is always authoritative.
func (s *Server) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Title:      "Edit a Book",
		ActivePage: "edit",
	}

	if err := r.ParseForm(); err != nil {
		data.Error = "❌ Invalid form data."
		s.render(w, "edit.html", data)
		return
	}

	original := r.FormValue("original_title")
	read := r.FormValue("read") == "on"

	ch := core.Changes{
		Title:  r.FormValue("title"),
		Author: r.FormValue("author"),
		Genre:  r.FormValue("genre"),
		Read:   &read,
	}

	if v := strings.TrimSpace(r.FormValue("year")); v != "" {
		year, err := parseFormYear(v)
		if err != nil {
			book, findErr := s.mgr.Find(original)
			if findErr == nil {
				data.Book = &book
			}

			data.Error = "❌ Publication year must be a number."
			s.render(w, "edit.html", data)
			return
		}

		ch.Year = &year
	}

	book, err := s.mgr.Edit(original, ch)
	if err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			data.Error = "❌ Book not found."
		} else {
			log.Printf("Failed to update book: %v", err)
			data.Error = "❌ " + err.Error()
		}

		s.render(w, "edit.html", data)
		return
	}

	data.Book = &book
	data.Success = "✅ Book updated successfully!"
	s.render(w, "edit.html", data)
}

// handleRemoveSubmit removes a book by title and re-renders the library
func (s *Server) handleRemoveSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderIndex(w, "", "", "❌ Invalid form data.")
		return
	}

	title := r.FormValue("title")

	if err := s.mgr.Remove(title); err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			s.renderIndex(w, "", "", "❌ Book not found.")
			return
		}

		log.Printf("Failed to remove book: %v", err)
		s.renderIndex(w, "", "", "❌ "+err.Error())
		return
	}

	s.renderIndex(w, "", "✅ Book removed successfully!", "")
}

// handleSearchPage renders the search form and, when a query was
// submitted, its results
func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	searchBy := r.URL.Query().Get("by")
	if searchBy == "" {
		searchBy = string(core.SearchByTitle)
	}

	data := PageData{
		Title:      "Search for a Book",
		ActivePage: "search",
		SearchBy:   searchBy,
		Query:      r.URL.Query().Get("q"),
	}

	if !r.URL.Query().Has("q") {
		s.render(w, "search.html", data)
		return
	}

	field, err := core.ParseSearchField(searchBy)
	if err != nil {
		field = core.SearchByTitle
		data.SearchBy = string(field)
	}

	data.Searched = true
	data.Books = slices.Collect(s.mgr.Search(field, data.Query))

	if len(data.Books) == 0 {
		data.Error = "❌ No matching books found."
	}

	s.render(w, "search.html", data)
}

// handleStatsPage renders the statistics page
func (s *Server) handleStatsPage(w http.ResponseWriter, _ *http.Request) {
	data := PageData{
		Title:      "Library Statistics",
		ActivePage: "stats",
		Stats:      s.mgr.Statistics(),
	}

	s.render(w, "stats.html", data)
}

// handleListBooks returns the library as JSON, optionally sorted
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	key, err := core.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.jsonResponse(w, s.mgr.List(key))
}

// handleCreateBook adds a book from form data
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.jsonError(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	year, err := parseFormYear(r.FormValue("year"))
	if err != nil {
		s.jsonError(w, "Publication year must be a number", http.StatusBadRequest)
		return
	}

	book := model.Book{
		Title:  r.FormValue("title"),
		Author: r.FormValue("author"),
		Year:   year,
		Genre:  r.FormValue("genre"),
		Read:   core.ParseRead(r.FormValue("read")),
	}

	if err := s.mgr.Add(book); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			s.jsonError(w, verr.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("Failed to add book: %v", err)
		s.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.jsonResponse(w, APIResponse{
		Success: true,
		Message: "Book added",
		Data:    book,
	})
}

// handleGetBook returns the first book matching the title
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.mgr.Find(r.PathValue("title"))
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusNotFound)
		return
	}

	s.jsonResponse(w, book)
}

// handleUpdateBook edits the book named in the path. Absent or blank
// fields keep their stored values
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.jsonError(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	ch := core.Changes{
		Title:  r.FormValue("title"),
		Author: r.FormValue("author"),
		Genre:  r.FormValue("genre"),
	}

	if v := strings.TrimSpace(r.FormValue("year")); v != "" {
		year, err := parseFormYear(v)
		if err != nil {
			s.jsonError(w, "Publication year must be a number", http.StatusBadRequest)
			return
		}

		ch.Year = &year
	}

	if v := strings.TrimSpace(r.FormValue("read")); v != "" {
		read := core.ParseRead(v)
		ch.Read = &read
	}

	book, err := s.mgr.Edit(r.PathValue("title"), ch)
	if err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			s.jsonError(w, err.Error(), http.StatusNotFound)
			return
		}

		log.Printf("Failed to update book: %v", err)
		s.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.jsonResponse(w, APIResponse{
		Success: true,
		Message: "Book updated",
		Data:    book,
	})
}

// handleDeleteBook removes the first book matching the title
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := s.mgr.Remove(r.PathValue("title")); err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			s.jsonError(w, err.Error(), http.StatusNotFound)
			return
		}

		log.Printf("Failed to remove book: %v", err)
		s.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.jsonResponse(w, APIResponse{
		Success: true,
		Message: "Book removed",
	})
}

// handleSearchBooks returns books whose field contains the query
func (s *Server) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	fieldName := r.URL.Query().Get("field")
	if fieldName == "" {
		fieldName = string(core.SearchByTitle)
	}

	field, err := core.ParseSearchField(fieldName)
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	books := slices.Collect(s.mgr.Search(field, r.URL.Query().Get("q")))
	if books == nil {
		books = []model.Book{}
	}

	s.jsonResponse(w, books)
}

// handleStats returns the library statistics as JSON
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, s.mgr.Statistics())
}

// handleStatus returns basic application status
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	status := map[string]any{
		"app":     application.AppName,
		"version": application.Version,
		"books":   s.mgr.Len(),
	}

	s.jsonResponse(w, status)
}

// handleHealth returns health check status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// parseFormYear parses the year field, clamping it to the 0-9999 range
// the form advertises
func parseFormYear(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}

	if year < 0 {
		year = 0
	} else if year > 9999 {
		year = 9999
	}

	return year, nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("JSON encode error: %v", err)
	}
}

// jsonError writes a JSON error response
func (s *Server) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   message,
	}); err != nil {
		log.Printf("JSON encode error: %v", err)
	}
}
