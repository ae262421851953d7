package http_movie

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/humanbelnik/movieshelf/core/internal/delivery/http/common"
	"github.com/humanbelnik/movieshelf/core/internal/model"
	usecase_movie "github.com/humanbelnik/movieshelf/core/internal/usecase/movie"
)

// CreateMovieRequestDTO is the body of POST /movies.
type CreateMovieRequestDTO struct {
	CoverURL    string `json:"coverUrl"`
	Code        string `json:"code" binding:"required"`
	Date        string `json:"date"`
	Actors      string `json:"actors"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// UpdateMovieRequestDTO is the body of PUT /movies/{id}. Absent fields keep
// their stored values.
type UpdateMovieRequestDTO struct {
	CoverURL    *string `json:"coverUrl"`
	Code        *string `json:"code"`
	Date        *string `json:"date"`
	Actors      *string `json:"actors"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// MovieResponseDTO mirrors the sheet columns one to one.
type MovieResponseDTO struct {
	ID          string `json:"id"`
	CoverURL    string `json:"coverUrl"`
	Code        string `json:"code"`
	Date        string `json:"date"`
	Actors      string `json:"actors"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

func (r *CreateMovieRequestDTO) ConvertToMovie() model.Movie {
	return model.Movie{
		CoverURL:    r.CoverURL,
		Code:        r.Code,
		Date:        r.Date,
		Actors:      r.Actors,
		Genre:       r.Genre,
		Description: r.Description,
	}
}

func (r *UpdateMovieRequestDTO) ConvertToUpdate() model.MovieUpdate {
	return model.MovieUpdate{
		CoverURL:    r.CoverURL,
		Code:        r.Code,
		Date:        r.Date,
		Actors:      r.Actors,
		Genre:       r.Genre,
		Description: r.Description,
	}
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
		ID:          m.ID,
		CoverURL:    m.CoverURL,
		Code:        m.Code,
		Date:        m.Date,
		Actors:      m.Actors,
		Genre:       m.Genre,
		Description: m.Description,
	}
}

func ConvertFromMovieList(movies []model.Movie) []MovieResponseDTO {
	out := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		out[i] = ConvertFromMovie(m)
	}
	return out
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.GET("", c.listMovies)
		movies.POST("", c.createMovie)
		movies.GET("/:movie_id", c.getMovie)
		movies.PUT("/:movie_id", c.updateMovie)
		movies.DELETE("/:movie_id", c.deleteMovie)
	}
}

// @Summary List movies
// @Description Returns all movies, newest first
// @Tags Movies operations
// @Produce json
// @Success 200 {array} MovieResponseDTO "Movie list"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /movies [get]
func (c *Controller) listMovies(ctx *gin.Context) {
	movies, err := c.uc.LoadAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to list movies", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to list movies",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieList(movies))
}

// @Summary Create movie
// @Description Creates a movie; the trimmed code becomes the record id
// @Tags Movies operations
// @Accept json
// @Produce json
// @Param request body CreateMovieRequestDTO true "Movie fields"
// @Success 201 {object} MovieResponseDTO "Created movie"
// @Failure 400 {object} http_common.ErrorResponse "Empty code or bad body"
// @Failure 409 {object} http_common.ErrorResponse "Code already in use"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /movies [post]
func (c *Controller) createMovie(ctx *gin.Context) {
	var req CreateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	movie, err := c.uc.Create(ctx.Request.Context(), req.ConvertToMovie())
	if err != nil {
		c.logger.Error("failed to create movie",
			slog.String("error", err.Error()),
			slog.String("code", req.Code),
		)
		switch {
		case errors.Is(err, usecase_movie.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Code must not be empty",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		case errors.Is(err, usecase_movie.ErrCodeConflict):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Error:   "Code already in use",
				Message: err.Error(),
				Code:    http.StatusConflict,
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to create movie",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromMovie(movie))
}

// @Summary Get movie
// @Description Returns one movie by id
// @Tags Movies operations
// @Produce json
// @Param movie_id path string true "Movie id" example("MV-001")
// @Success 200 {object} MovieResponseDTO "Movie"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	id := ctx.Param("movie_id")

	movie, err := c.uc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.logger.Error("failed to get movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", id),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to get movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(movie))
}

// @Summary Update movie
// @Description Merges the partial body onto the movie; changing code renames the id
// @Tags Movies operations
// @Accept json
// @Produce json
// @Param movie_id path string true "Movie id" example("MV-001")
// @Param request body UpdateMovieRequestDTO true "Fields to change"
// @Success 200 {object} MovieResponseDTO "Updated movie"
// @Failure 400 {object} http_common.ErrorResponse "Bad body"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 409 {object} http_common.ErrorResponse "Code already in use"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /movies/{movie_id} [put]
func (c *Controller) updateMovie(ctx *gin.Context) {
	id := ctx.Param("movie_id")

	var req UpdateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	movie, err := c.uc.Update(ctx.Request.Context(), id, req.ConvertToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, usecase_movie.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, usecase_movie.ErrCodeConflict):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Error:   "Code already in use",
				Message: err.Error(),
				Code:    http.StatusConflict,
			})
		default:
			c.logger.Error("failed to update movie",
				slog.String("error", err.Error()),
				slog.String("movie_id", id),
			)
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to update movie",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(movie))
}

// @Summary Delete movie
// @Description Deletes a movie row; its stored cover is cleaned up best-effort
// @Tags Movies operations
// @Produce json
// @Param movie_id path string true "Movie id" example("MV-001")
// @Success 204 "Movie deleted"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /movies/{movie_id} [delete]
func (c *Controller) deleteMovie(ctx *gin.Context) {
	id := ctx.Param("movie_id")

	if err := c.uc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, usecase_movie.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.logger.Error("failed to delete movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", id),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to delete movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
