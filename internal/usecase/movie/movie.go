package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/humanbelnik/movieshelf/core/internal/model"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCodeConflict     = errors.New("code conflict")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

// Repository is the row-oriented movie store. Snapshot returns all data
// rows in physical order; an entry's index is its physical row index and is
// only valid against that snapshot (a concurrent delete shifts rows up).
//
//go:generate mockery --name=Repository --output=./mocks/movie/repository --filename=repository.go
type Repository interface {
	Snapshot(ctx context.Context) ([]model.Movie, error)
	Append(ctx context.Context, m model.Movie) error
	RewriteAt(ctx context.Context, index int, m model.Movie) error
	DeleteAt(ctx context.Context, index int) error
}

// CoverCleaner removes a stored cover by its URL, best-effort. A URL the
// backend does not recognize is not an error.
//
//go:generate mockery --name=CoverCleaner --output=./mocks/movie/cleaner --filename=cleaner.go
type CoverCleaner interface {
	DeleteIfExists(ctx context.Context, coverURL string) error
}

// Usecase implements catalog CRUD on the spreadsheet-backed store.
// Every operation re-reads the full table before deciding: the backend has
// no locking and no unique constraints, so uniqueness and row positions are
// only ever checked against a fresh snapshot. Two concurrent creates with
// one code, or an update racing a delete below it, can still interleave;
// that is the accepted behavior of this design, not something the usecase
// compensates for.
type Usecase struct {
	repository Repository
	cleaners   []CoverCleaner

	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(repository Repository, cleaners []CoverCleaner, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		repository: repository,
		cleaners:   cleaners,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// LoadAll returns all movies, newest-appended first. Recency ordering is the
// reversed physical row order; rows with an empty id are dropped.
func (u *Usecase) LoadAll(ctx context.Context) ([]model.Movie, error) {
	snapshot, err := u.repository.Snapshot(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	movies := make([]model.Movie, 0, len(snapshot))
	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i].ID == model.EmptyCode {
			continue
		}
		movies = append(movies, snapshot[i])
	}
	return movies, nil
}

func (u *Usecase) GetByID(ctx context.Context, id string) (model.Movie, error) {
	movies, err := u.LoadAll(ctx)
	if err != nil {
		return model.Movie{}, err
	}
	for _, m := range movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, ErrResourceNotFound
}

// Create appends a new movie. The trimmed code becomes both code and id;
// an empty code is invalid, an already-used one is a conflict.
func (u *Usecase) Create(ctx context.Context, input model.Movie) (model.Movie, error) {
	code := strings.TrimSpace(input.Code)
	if code == model.EmptyCode {
		return model.Movie{}, fmt.Errorf("%w: code must not be empty", ErrInvalidInput)
	}
	input.Code = code
	input.ID = code

	if _, err := u.GetByID(ctx, input.ID); err == nil {
		return model.Movie{}, ErrCodeConflict
	} else if !errors.Is(err, ErrResourceNotFound) {
		return model.Movie{}, err
	}

	if err := u.repository.Append(ctx, input); err != nil {
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	return input, nil
}

// Update merges the partial onto the stored record and rewrites its row in
// place. A code change renames the record: the id follows the new code, so
// callers must pick the new id up from the returned record.
func (u *Usecase) Update(ctx context.Context, id string, partial model.MovieUpdate) (model.Movie, error) {
	snapshot, err := u.repository.Snapshot(ctx)
	if err != nil {
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	index := locate(snapshot, id)
	if index < 0 {
		return model.Movie{}, ErrResourceNotFound
	}
	current := snapshot[index]

	newCode := current.Code
	if partial.Code != nil {
		newCode = *partial.Code
	}
	newCode = strings.TrimSpace(newCode)
	newID := newCode
	if newID == model.EmptyCode {
		// A code blanked out by the caller keeps the old identity.
		newID = id
		newCode = current.Code
	}

	if newID != id {
		if _, err := u.GetByID(ctx, newID); err == nil {
			return model.Movie{}, ErrCodeConflict
		} else if !errors.Is(err, ErrResourceNotFound) {
			return model.Movie{}, err
		}
	}

	updated := partial.Merge(current)
	updated.ID = newID
	updated.Code = newCode

	if err := u.repository.RewriteAt(ctx, index, updated); err != nil {
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	return updated, nil
}

// Delete removes the record's row. The stored cover is cleaned up first,
// best-effort: cleanup failures are logged and dropped, the row delete
// proceeds regardless.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	snapshot, err := u.repository.Snapshot(ctx)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	index := locate(snapshot, id)
	if index < 0 {
		return ErrResourceNotFound
	}

	if coverURL := snapshot[index].CoverURL; coverURL != "" {
		for _, cleaner := range u.cleaners {
			if err := cleaner.DeleteIfExists(ctx, coverURL); err != nil {
				u.logger.Warn("cover cleanup skipped",
					slog.String("movie_id", id),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	if err := u.repository.DeleteAt(ctx, index); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// locate returns the physical row index of id inside this snapshot, -1 when
// absent. The index is meaningless against any other snapshot.
func locate(snapshot []model.Movie, id string) int {
	for i, m := range snapshot {
		if m.ID != model.EmptyCode && m.ID == id {
			return i
		}
	}
	return -1
}
