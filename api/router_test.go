package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	service := newTestService(t, testConfig)

	recorder := serveJSON(t, service, http.MethodGet, PingURL, nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "pong", recorder.Body.String())
}

func TestHealth(t *testing.T) {
	service := newTestService(t, testConfig)

	before := time.Now().UTC()
	recorder := serveJSON(t, service, http.MethodGet, HealthURL, nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var res HealthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	require.Equal(t, "healthy", res.Status)
	require.WithinDuration(t, before, res.Timestamp, time.Minute)
}

func TestRequestID(t *testing.T) {
	t.Run("Generated", func(t *testing.T) {
		service := newTestService(t, testConfig)

		recorder := serveJSON(t, service, http.MethodGet, PingURL, nil)

		_, err := uuid.Parse(recorder.Header().Get(RequestIDHeader))
		require.NoError(t, err)
	})

	t.Run("Echoed", func(t *testing.T) {
		service := newTestService(t, testConfig)
		id := uuid.NewString()

		request, err := http.NewRequest(http.MethodGet, PingURL, nil)
		require.NoError(t, err)
		request.Header.Set(RequestIDHeader, id)

		recorder := httptest.NewRecorder()
		service.router.ServeHTTP(recorder, request)

		require.Equal(t, id, recorder.Header().Get(RequestIDHeader))
	})

	t.Run("InvalidReplaced", func(t *testing.T) {
		service := newTestService(t, testConfig)

		request, err := http.NewRequest(http.MethodGet, PingURL, nil)
		require.NoError(t, err)
		request.Header.Set(RequestIDHeader, "<script>")

		recorder := httptest.NewRecorder()
		service.router.ServeHTTP(recorder, request)

		got := recorder.Header().Get(RequestIDHeader)
		require.NotEqual(t, "<script>", got)

		_, err = uuid.Parse(got)
		require.NoError(t, err)
	})
}

func TestCORSMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		allowedOrigins []string
		method         string
		origin         string
		checkResponse  func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:           "AllowAll",
			allowedOrigins: []string{"*"},
			method:         http.MethodGet,
			origin:         "https://chat.example.com",
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
				require.Equal(t, RequestIDHeader, recorder.Header().Get("Access-Control-Expose-Headers"))
			},
		},
		{
			name:           "ListedOrigin",
			allowedOrigins: []string{"https://chat.example.com"},
			method:         http.MethodGet,
			origin:         "https://chat.example.com",
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, "https://chat.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
				require.Equal(t, "Origin", recorder.Header().Get("Vary"))
			},
		},
		{
			name:           "UnlistedOrigin",
			allowedOrigins: []string{"https://chat.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "Preflight",
			allowedOrigins: []string{"*"},
			method:         http.MethodOptions,
			origin:         "https://chat.example.com",
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNoContent, recorder.Code)
				require.Equal(t, "GET, POST, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
				require.Equal(t, "Content-Type,"+RequestIDHeader, recorder.Header().Get("Access-Control-Allow-Headers"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig
			cfg.AllowedOrigins = tc.allowedOrigins
			service := newTestService(t, cfg)

			request, err := http.NewRequest(tc.method, PingURL, nil)
			require.NoError(t, err)
			request.Header.Set("Origin", tc.origin)

			recorder := httptest.NewRecorder()
			service.router.ServeHTTP(recorder, request)

			tc.checkResponse(t, recorder)
		})
	}
}
