package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_WritesJSONError(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/meetings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, buf.String(), "Panic recovered")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestRecovery_HeadersAlreadySent(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("partial"))
		panic("late failure")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/meetings", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Panic recovered", entry["message"])
	assert.Equal(t, true, entry["headers_sent"])
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "info"},
		{status: http.StatusNotFound, level: "warn"},
		{status: http.StatusInternalServerError, level: "error"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		handler := RequestLogger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/students?x=1", nil))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, tc.level, entry["level"])
		assert.Equal(t, float64(tc.status), entry["status"])
		assert.Equal(t, "x=1", entry["query"])
	}
}
