package model

const EmptyCode string = ""

// Movie is one catalog entry, backed by one row in the movies sheet.
// Code is the user-supplied short identifier and doubles as the display
// title; ID always equals the current Code, so a rename changes the ID.
type Movie struct {
	ID          string
	CoverURL    string
	Code        string
	Date        string
	Actors      string
	Genre       string
	Description string
}

// MovieUpdate is a partial update. Nil fields keep the stored value.
type MovieUpdate struct {
	CoverURL    *string
	Code        *string
	Date        *string
	Actors      *string
	Genre       *string
	Description *string
}

// Merge applies the update on top of m and returns the result.
// ID and Code are left untouched; the usecase resolves those separately.
func (u MovieUpdate) Merge(m Movie) Movie {
	if u.CoverURL != nil {
		m.CoverURL = *u.CoverURL
	}
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.Actors != nil {
		m.Actors = *u.Actors
	}
	if u.Genre != nil {
		m.Genre = *u.Genre
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	return m
}
