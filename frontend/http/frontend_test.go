package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/randforge/randforge/generator/splitmix"
	_ "github.com/randforge/randforge/generator/xoroshiro"
)

func newTestFrontend() *Frontend {
	return NewFrontend(Config{Addr: "127.0.0.1:0"})
}

func doRequest(t *testing.T, f *Frontend, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	f.handler().ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestGeneratorsRoute(t *testing.T) {
	code, body := doRequest(t, newTestFrontend(), "/generators")
	require.Equal(t, http.StatusOK, code)

	names, ok := body["generators"].([]interface{})
	require.True(t, ok)
	require.Contains(t, names, "splitmix64")
	require.Contains(t, names, "xoshiro256starstar")
}

func TestSampleRoute(t *testing.T) {
	code, body := doRequest(t, newTestFrontend(), "/sample/splitmix64?count=5")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "splitmix64", body["generator"])

	values, ok := body["values"].([]interface{})
	require.True(t, ok)
	require.Len(t, values, 5)
}

func TestSampleRouteSeededIsDeterministic(t *testing.T) {
	f := newTestFrontend()

	_, first := doRequest(t, f, "/sample/splitmix64?count=3&seed=0102030405060708")
	_, second := doRequest(t, f, "/sample/splitmix64?count=3&seed=0102030405060708")
	require.Equal(t, first["values"], second["values"])
}

func TestSampleRouteBounded(t *testing.T) {
	code, body := doRequest(t, newTestFrontend(), "/sample/splitmix64?count=100&bound=10")
	require.Equal(t, http.StatusOK, code)

	values := body["values"].([]interface{})
	require.Len(t, values, 100)
	for _, v := range values {
		require.Less(t, v.(float64), 10.0)
	}
}

func TestSampleFloatRoute(t *testing.T) {
	code, body := doRequest(t, newTestFrontend(), "/sample/splitmix64/float?count=50")
	require.Equal(t, http.StatusOK, code)

	values := body["values"].([]interface{})
	require.Len(t, values, 50)
	for _, v := range values {
		f := v.(float64)
		require.True(t, f >= 0 && f < 1)
	}
}

func TestUnknownGenerator(t *testing.T) {
	code, body := doRequest(t, newTestFrontend(), "/sample/no-such-generator")
	require.Equal(t, http.StatusNotFound, code)
	require.NotEmpty(t, body["error"])
}

func TestBadSeed(t *testing.T) {
	// splitmix64 wants 8 seed bytes; 2 hex bytes is a client error.
	code, body := doRequest(t, newTestFrontend(), "/sample/splitmix64?seed=0102")
	require.Equal(t, http.StatusBadRequest, code)
	require.NotEmpty(t, body["error"])

	// Odd-length hex cannot decode at all.
	code, _ = doRequest(t, newTestFrontend(), "/sample/splitmix64?seed=xyz")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestBadCount(t *testing.T) {
	code, _ := doRequest(t, newTestFrontend(), "/sample/splitmix64?count=0")
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = doRequest(t, newTestFrontend(), "/sample/splitmix64?count=1000000")
	require.Equal(t, http.StatusBadRequest, code)
}
