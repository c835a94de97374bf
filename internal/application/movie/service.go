// Package movie implements the read-mostly movie catalog: anonymous
// reads, organizer-or-admin writes enforced at the edge (no per-resource
// ownership — a Movie belongs to the catalog, not to one organizer).
package movie

import (
	"context"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Service implements movie catalog CRUD.
type Service struct {
	movies repository.MovieRepository
	logger *logger.Logger
}

// NewService creates a new movie catalog service.
func NewService(movies repository.MovieRepository, log *logger.Logger) *Service {
	return &Service{movies: movies, logger: log}
}

// Create adds a movie to the catalog.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, apperrors.ErrBadRequest("invalid release date, expected YYYY-MM-DD")
	}

	movie := &entity.Movie{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		ReleaseDate:     releaseDate,
		PosterURL:       req.PosterURL,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	return toResponse(movie), nil
}

// GetByID returns a single movie.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(movie), nil
}

// Update applies a partial update to a movie.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Response, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		movie.Title = req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.DurationMinutes > 0 {
		movie.DurationMinutes = req.DurationMinutes
	}
	if req.ReleaseDate != "" {
		releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
		if err != nil {
			return nil, apperrors.ErrBadRequest("invalid release date, expected YYYY-MM-DD")
		}
		movie.ReleaseDate = releaseDate
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return toResponse(movie), nil
}

// Delete soft-deletes a movie.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.movies.Delete(ctx, id)
}

// List returns a page of the catalog, optionally filtered by a title search.
func (s *Service) List(ctx context.Context, params ListParams) ([]*Response, int64, error) {
	offset := (params.Page - 1) * params.Limit

	movies, total, err := s.movies.List(ctx, repository.MovieFilter{Search: params.Search}, offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*Response, 0, len(movies))
	for _, m := range movies {
		responses = append(responses, toResponse(m))
	}
	return responses, total, nil
}

func toResponse(m *entity.Movie) *Response {
	return &Response{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		ReleaseDate:     m.ReleaseDate.Format(dateLayout),
		PosterURL:       m.PosterURL,
		CreatedAt:       m.CreatedAt,
	}
}
