package app

import (
	"errors"
	"net/http"

	"github.com/ekinunal/seat-inventory/api"
	"github.com/ekinunal/seat-inventory/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.queries.ListMovies(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieResponses(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.catalogRepo.CreateMovie(r.Context(), input.Title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.conflictResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		Id:    movie.ID,
		Title: movie.Title,
	}
}
