package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMovieAlreadyExists = errors.New("a movie with this title already exists")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrShowNotFound       = errors.New("show not found")
	ErrInvalidSeatCount   = errors.New("seat count must be greater than zero")

	// ErrShowBusy is returned when the show's row lock could not be acquired.
	// The operation has not been applied in any part; callers may retry.
	ErrShowBusy = errors.New("show is busy, try again")
)

// InsufficientSeatsError rejects a booking that asks for more seats than the
// show currently has available. Available carries the count at rejection time
// so the caller can offer a smaller booking.
type InsufficientSeatsError struct {
	Available int
}

func (e InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough available seats, only %d seats are available", e.Available)
}

// OverCancellationError rejects a cancellation that releases more seats than
// are currently booked. Booked carries the count at rejection time.
type OverCancellationError struct {
	Booked int
}

func (e OverCancellationError) Error() string {
	return fmt.Sprintf("cannot cancel that many seats, only %d seats are booked", e.Booked)
}

// LedgerDriftError reports a cached available counter that disagrees with the
// value derived by replaying the show's booking events. It indicates the
// atomicity contract between counter and ledger was violated at some point.
type LedgerDriftError struct {
	ShowID  int64
	Cached  int
	Derived int
}

func (e LedgerDriftError) Error() string {
	return fmt.Sprintf("ledger drift on show %d: cached available %d, derived %d", e.ShowID, e.Cached, e.Derived)
}
