package app

import (
	"errors"
	"net/http"

	"github.com/ekinunal/seat-inventory/api"
	"github.com/ekinunal/seat-inventory/internal/domain"
)

func (app *Application) BookSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.BookingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	result, err := app.engine.Book(r.Context(), showID, input.Seats)
	if err != nil {
		var insufficient domain.InsufficientSeatsError

		switch {
		case errors.Is(err, domain.ErrShowNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &insufficient):
			app.metrics.rejections.Add(r.Context(), 1)
			app.bookingConflictResponse(w, r, err.Error(), &insufficient.Available, nil)
		case errors.Is(err, domain.ErrShowBusy):
			app.busyResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookings.Add(r.Context(), 1)

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(result), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.BookingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	result, err := app.engine.Cancel(r.Context(), showID, input.Seats)
	if err != nil {
		var over domain.OverCancellationError

		switch {
		case errors.Is(err, domain.ErrShowNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &over):
			app.metrics.rejections.Add(r.Context(), 1)
			app.bookingConflictResponse(w, r, err.Error(), nil, &over.Booked)
		case errors.Is(err, domain.ErrShowBusy):
			app.busyResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.cancellations.Add(r.Context(), 1)

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(result), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(result domain.BookingResult) api.BookingResponse {
	return api.BookingResponse{
		ShowId:    result.ShowID,
		EventId:   result.EventID,
		Available: result.Available,
	}
}
