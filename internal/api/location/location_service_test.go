package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*ServiceImpl, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewServiceImpl(server.URL, 5*time.Second, slog.Default()), server
}

func TestResolveZipSuccess(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/75201", r.URL.Path)
		fmt.Fprint(w, `{"post code":"75201","places":[{"place name":"Dallas","state":"Texas","state abbreviation":"TX"}]}`)
	})

	record, err := svc.Resolve(context.Background(), "75201")
	require.NoError(t, err)
	assert.Equal(t, "Dallas", record.City)
	assert.Equal(t, "Texas", record.State)
	assert.Equal(t, "TX", record.StateCode)
	assert.Equal(t, "75201", record.ZipCode)
	assert.Equal(t, "Dallas, Texas 75201", record.FullAddress)
}

func TestResolveZipNotFound(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.Resolve(context.Background(), "00000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrLocationNotFound))
}

func TestResolveZipEmptyPlaces(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"places":[]}`)
	})

	_, err := svc.Resolve(context.Background(), "99999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrLocationNotFound))
}

func TestResolveZipUsesCache(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"places":[{"place name":"Seattle","state":"Washington","state abbreviation":"WA"}]}`)
	})

	for i := 0; i < 3; i++ {
		record, err := svc.Resolve(context.Background(), "98101")
		require.NoError(t, err)
		assert.Equal(t, "Seattle", record.City)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveCityFromStaticTable(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	record, err := svc.Resolve(context.Background(), "austin")
	require.NoError(t, err)
	assert.Equal(t, "Austin", record.City)
	assert.Equal(t, "Texas", record.State)
	assert.Equal(t, "TX", record.StateCode)
	assert.Equal(t, "78701", record.ZipCode)
}

func TestResolveCityWithStateAbbreviation(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	record, err := svc.Resolve(context.Background(), "Springfield, IL")
	require.NoError(t, err)
	assert.Equal(t, "Springfield", record.City)
	assert.Equal(t, "Illinois", record.State)
	assert.Equal(t, "IL", record.StateCode)
}

func TestResolveCityWithFullStateName(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	record, err := svc.Resolve(context.Background(), "Portland, oregon")
	require.NoError(t, err)
	assert.Equal(t, "Portland", record.City)
	assert.Equal(t, "Oregon", record.State)
	assert.Equal(t, "OR", record.StateCode)
}

func TestResolveCityStateOverridesTableDefault(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	// Columbus maps to Ohio in the table, but the user said Georgia.
	record, err := svc.Resolve(context.Background(), "Columbus, Georgia")
	require.NoError(t, err)
	assert.Equal(t, "Columbus", record.City)
	assert.Equal(t, "Georgia", record.State)
	assert.Equal(t, "GA", record.StateCode)
}

func TestResolveUnknownCityDefaultsToNewYork(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	record, err := svc.Resolve(context.Background(), "nonexistent town")
	require.NoError(t, err)
	assert.Equal(t, "Nonexistent Town", record.City)
	assert.Equal(t, "New York", record.State)
	assert.Equal(t, "NY", record.StateCode)
}

func TestResolveCityPartialMatch(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	record, err := svc.Resolve(context.Background(), "downtown seattle")
	require.NoError(t, err)
	assert.Equal(t, "Seattle", record.City)
	assert.Equal(t, "WA", record.StateCode)
}

func TestResolveCityPartialMatchIsDeterministic(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	// Two known cities in one input; the alphabetically first key wins
	// on every run.
	for i := 0; i < 10; i++ {
		record, err := svc.Resolve(context.Background(), "dallas or austin")
		require.NoError(t, err)
		assert.Equal(t, "Austin", record.City)
		assert.Equal(t, "78701", record.ZipCode)
	}
}

func TestResolveCityKeepsMultibyteRunes(t *testing.T) {
	svc := NewServiceImpl("http://unused.invalid", time.Second, slog.Default())

	record, err := svc.Resolve(context.Background(), "évry")
	require.NoError(t, err)
	assert.Equal(t, "Évry", record.City)
	assert.True(t, utf8.ValidString(record.City))
}
