package movie

import (
	"context"
	"sync"
	"testing"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeMovies struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovies() *fakeMovies {
	return &fakeMovies{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovies) Create(ctx context.Context, m *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.movies[m.ID] = m
	return nil
}

func (f *fakeMovies) GetByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.movies[id]
	if !ok {
		return nil, apperrors.ErrNotFound("movie")
	}
	return m, nil
}

func (f *fakeMovies) Update(ctx context.Context, m *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[m.ID] = m
	return nil
}

func (f *fakeMovies) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.movies, id)
	return nil
}

func (f *fakeMovies) List(ctx context.Context, filter repository.MovieFilter, offset, limit int) ([]*entity.Movie, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Movie
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func TestCreateAndGetByID(t *testing.T) {
	movies := newFakeMovies()
	svc := NewService(movies, testLogger())

	created, err := svc.Create(context.Background(), CreateRequest{
		Title: "Interstellar", DurationMinutes: 169, ReleaseDate: "2014-11-07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Interstellar" {
		t.Fatalf("expected Interstellar, got %s", got.Title)
	}
}

func TestCreateRejectsMalformedReleaseDate(t *testing.T) {
	movies := newFakeMovies()
	svc := NewService(movies, testLogger())

	_, err := svc.Create(context.Background(), CreateRequest{
		Title: "Bad Date", DurationMinutes: 100, ReleaseDate: "not-a-date",
	})
	if !apperrors.Is(err, apperrors.CodeBadRequest) {
		t.Fatalf("expected BadRequest, got %v", err)
	}
}

func TestUpdatePartiallyAppliesFields(t *testing.T) {
	movies := newFakeMovies()
	svc := NewService(movies, testLogger())

	created, err := svc.Create(context.Background(), CreateRequest{
		Title: "Dune", DurationMinutes: 155, ReleaseDate: "2021-10-22",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateRequest{DurationMinutes: 166})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Dune" {
		t.Fatalf("expected title to remain Dune, got %s", updated.Title)
	}
	if updated.DurationMinutes != 166 {
		t.Fatalf("expected duration 166, got %d", updated.DurationMinutes)
	}
}
