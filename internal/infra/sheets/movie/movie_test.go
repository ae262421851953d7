//go:build !integration
// +build !integration

package infra_sheets_movie

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humanbelnik/movieshelf/core/internal/model"
)

func TestRowToMovie(t *testing.T) {
	testCases := []struct {
		name     string
		row      []any
		expected model.Movie
	}{
		{
			name: "Should map a full row positionally",
			row:  []any{"MV-001", "https://img/1.jpg", "MV-001", "12-03-2021", "A, B", "drama", "long ago"},
			expected: model.Movie{
				ID:          "MV-001",
				CoverURL:    "https://img/1.jpg",
				Code:        "MV-001",
				Date:        "12-03-2021",
				Actors:      "A, B",
				Genre:       "drama",
				Description: "long ago",
			},
		},
		{
			name: "Should default missing trailing cells to empty strings",
			row:  []any{"MV-002", "", "MV-002"},
			expected: model.Movie{
				ID:   "MV-002",
				Code: "MV-002",
			},
		},
		{
			name:     "Should map an empty row to a zero movie",
			row:      []any{},
			expected: model.Movie{},
		},
		{
			name:     "Should stringify non-string cells",
			row:      []any{"MV-003", "", "MV-003", 2021},
			expected: model.Movie{ID: "MV-003", Code: "MV-003", Date: "2021"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rowToMovie(tc.row))
		})
	}
}

func TestMovieToRow(t *testing.T) {
	m := model.Movie{
		ID:          "MV-001",
		CoverURL:    "https://img/1.jpg",
		Code:        "MV-001",
		Date:        "12-03-2021",
		Actors:      "A, B",
		Genre:       "drama",
		Description: "long ago",
	}

	row := movieToRow(m)

	assert.Len(t, row, len(headers))
	assert.Equal(t, []any{"MV-001", "https://img/1.jpg", "MV-001", "12-03-2021", "A, B", "drama", "long ago"}, row)
	// A row survives a map-back unchanged.
	assert.Equal(t, m, rowToMovie(row))
}

func TestHeaderRow(t *testing.T) {
	row := headerRow()

	assert.Len(t, row, 7)
	assert.Equal(t, "id", row[0])
	assert.Equal(t, "Release date", row[3])
	assert.Equal(t, "description", row[6])
}
