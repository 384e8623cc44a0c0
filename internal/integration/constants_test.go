package integration_test

const (
	TestMovieTitle   = "Test Movie"
	TestShowTiming   = "6 PM"
	TestShowCapacity = 50
)
