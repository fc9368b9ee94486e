package cmd

import (
	"strings"
	"testing"

	"github.com/ibarra/shelfr/internal/core"
	"github.com/ibarra/shelfr/internal/model"
)

func TestRenderBooks(t *testing.T) {
	books := []model.Book{
		{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Read: true},
		{Title: "Emma", Author: "Jane Austen", Year: 1815, Genre: "Romance"},
	}

	var sb strings.Builder
	renderBooks(&sb, "Your Library", books)

	out := sb.String()

	for _, want := range []string{"Your Library", "TITLE", "STATUS", "Dune", "Read", "Emma", "Unread", "1815"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderBooks() output missing %q:\n%s", want, out)
		}
	}

	// Rows are numbered from 1.
	if !strings.Contains(out, "1 ") || !strings.Contains(out, "2 ") {
		t.Errorf("renderBooks() output missing row numbers:\n%s", out)
	}
}

func TestRenderBooks_Empty(t *testing.T) {
	var sb strings.Builder
	renderBooks(&sb, "", nil)

	out := sb.String()
	if !strings.Contains(out, "TITLE") {
		t.Errorf("renderBooks() should still print the header, got:\n%s", out)
	}
}

func TestRenderStatistics(t *testing.T) {
	out := renderStatistics(core.Statistics{Total: 3, ReadCount: 2, PercentRead: 66.67})

	for _, want := range []string{"Library Statistics", "Total books: 3", "Percentage read: 66.67%"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderStatistics() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatistics_Empty(t *testing.T) {
	out := renderStatistics(core.Statistics{})

	if !strings.Contains(out, "Total books: 0") || !strings.Contains(out, "Percentage read: 0.00%") {
		t.Errorf("renderStatistics() on empty library = %q", out)
	}
}

func TestSortKeyFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    core.SortKey
		wantErr bool
	}{
		{
			name:  "title",
			input: "Title",
			want:  core.SortByTitle,
		},
		{
			name:  "lowercase year",
			input: "year",
			want:  core.SortByYear,
		},
		{
			name:  "empty keeps insertion order",
			input: "",
			want:  core.SortNone,
		},
		{
			name:    "unknown key",
			input:   "Publisher",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f sortKeyFlag

			err := f.Set(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && f.key != tt.want {
				t.Errorf("Set(%q) key = %q, want %q", tt.input, f.key, tt.want)
			}
		})
	}
}

func TestSortKeyFlag_String(t *testing.T) {
	f := sortKeyFlag{key: core.SortByYear}

	if f.String() != "Year" {
		t.Errorf("String() = %q, want %q", f.String(), "Year")
	}

	if f.Type() != "key" {
		t.Errorf("Type() = %q, want %q", f.Type(), "key")
	}
}
