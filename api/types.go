// Package api defines the request and response types of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

// BookingConflictResponse rejects a booking or cancellation on business
// grounds. Exactly one of Available (insufficient seats) or Booked
// (over-cancellation) is set, carrying the count at rejection time.
type BookingConflictResponse struct {
	Message   string    `json:"message"`
	Available *int      `json:"available,omitempty"`
	Booked    *int      `json:"booked,omitempty"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateMovieRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type MovieResponse struct {
	Id    int64  `json:"id"`
	Title string `json:"title"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type CreateShowRequest struct {
	Timing   string `json:"timing" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"required,gt=0,lte=100000"`
}

type ShowResponse struct {
	Id        int64  `json:"id"`
	MovieId   int64  `json:"movieId"`
	Timing    string `json:"timing"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
}

type ShowListResponse struct {
	Shows []ShowResponse `json:"shows"`
}

type BookingRequest struct {
	Seats int `json:"seats" validate:"required,gt=0"`
}

type BookingResponse struct {
	ShowId    int64  `json:"showId"`
	EventId   string `json:"eventId"`
	Available int    `json:"available"`
}

type AvailabilityResponse struct {
	ShowId    int64 `json:"showId"`
	Available int   `json:"available"`
}

type LedgerEventResponse struct {
	Seq       int64     `json:"seq"`
	EventId   string    `json:"eventId"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"createdAt"`
}

type LedgerResponse struct {
	ShowId int64                 `json:"showId"`
	Events []LedgerEventResponse `json:"events"`
}

type ReconcileResponse struct {
	ShowId   int64 `json:"showId"`
	Cached   int   `json:"cached"`
	Derived  int   `json:"derived"`
	Repaired bool  `json:"repaired"`
	Events   int   `json:"events"`
}
