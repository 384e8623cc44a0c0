package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "eventId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateCatalog(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE booking_events RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), "TRUNCATE shows RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), "TRUNCATE movies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func flushCache(t testing.TB, app *TestApp) {
	require.NoError(t, app.Cache.FlushAll(context.Background()).Err())
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, title string) int64 {
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO movies (title) VALUES ($1) RETURNING id", title).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestShow(t testing.TB, db *pgxpool.Pool, movieID int64, timing string, capacity, available int) int64 {
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO shows (movie_id, timing, capacity, available) VALUES ($1, $2, $3, $4) RETURNING id",
		movieID, timing, capacity, available).Scan(&id)
	require.NoError(t, err)

	return id
}

func showAvailability(t testing.TB, db *pgxpool.Pool, showID int64) int {
	var available int
	err := db.QueryRow(context.Background(),
		"SELECT available FROM shows WHERE id = $1", showID).Scan(&available)
	require.NoError(t, err)

	return available
}

func ledgerSum(t testing.TB, db *pgxpool.Pool, showID int64) (int, int) {
	var sum, count int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(delta), 0), COUNT(*) FROM booking_events WHERE show_id = $1", showID).Scan(&sum, &count)
	require.NoError(t, err)

	return sum, count
}
