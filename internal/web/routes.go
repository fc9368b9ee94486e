package web

import (
	"io/fs"
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Static files
	staticSubFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSubFS))))

	// Pages
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /books/add", s.handleAddPage)
	mux.HandleFunc("POST /books/add", s.handleAddSubmit)
	mux.HandleFunc("GET /books/edit", s.handleEditPage)
	mux.HandleFunc("POST /books/edit", s.handleEditSubmit)
	mux.HandleFunc("POST /books/remove", s.handleRemoveSubmit)
	mux.HandleFunc("GET /books/search", s.handleSearchPage)
	mux.HandleFunc("GET /stats", s.handleStatsPage)

	// Book API
	mux.HandleFunc("GET /api/books", s.handleListBooks)
	mux.HandleFunc("POST /api/books", s.handleCreateBook)
	mux.HandleFunc("GET /api/books/search", s.handleSearchBooks)
	mux.HandleFunc("GET /api/books/{title}", s.handleGetBook)
	mux.HandleFunc("PUT /api/books/{title}", s.handleUpdateBook)
	mux.HandleFunc("DELETE /api/books/{title}", s.handleDeleteBook)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	// System
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /health", s.handleHealth)
}
