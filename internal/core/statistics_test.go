package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibarra/shelfr/internal/model"
)

func TestLibrary_Statistics(t *testing.T) {
	tests := []struct {
		name  string
		reads []bool
		want  Statistics
	}{
		{
			name: "empty library",
			want: Statistics{},
		},
		{
			name:  "two of three read rounds to two decimals",
			reads: []bool{true, false, true},
			want:  Statistics{Total: 3, ReadCount: 2, PercentRead: 66.67},
		},
		{
			name:  "all read",
			reads: []bool{true, true},
			want:  Statistics{Total: 2, ReadCount: 2, PercentRead: 100},
		},
		{
			name:  "none read",
			reads: []bool{false, false, false},
			want:  Statistics{Total: 3},
		},
		{
			name:  "one of eight",
			reads: []bool{true, false, false, false, false, false, false, false},
			want:  Statistics{Total: 8, ReadCount: 1, PercentRead: 12.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := NewLibrary()
			for i, read := range tt.reads {
				require.NoError(t, lib.Add(model.Book{
					Title:  "Book",
					Author: "Author",
					Year:   2000 + i,
					Genre:  "Genre",
					Read:   read,
				}))
			}

			assert.Equal(t, tt.want, lib.Statistics())
		})
	}
}

func TestStatistics_JSONShape(t *testing.T) {
	data, err := json.Marshal(Statistics{Total: 3, ReadCount: 2, PercentRead: 66.67})
	require.NoError(t, err)

	assert.JSONEq(t, `{"total": 3, "read_count": 2, "percent_read": 66.67}`, string(data))
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1965", want: 1965},
		{input: "  1965  ", want: 1965},
		{input: "-500", want: -500},
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
		{input: "nineteen sixty-five", wantErr: true},
		{input: "1965.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYear(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty input reports the field", func(t *testing.T) {
		_, err := ParseYear("  ")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Year"}, verr.Fields)
	})
}

func TestParseRead(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "yes", want: true},
		{input: "Y", want: true},
		{input: "TRUE", want: true},
		{input: "1", want: true},
		{input: " read ", want: true},
		{input: "no", want: false},
		{input: "n", want: false},
		{input: "", want: false},
		{input: "maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRead(tt.input))
		})
	}
}
