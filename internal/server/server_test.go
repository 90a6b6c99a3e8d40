package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/moviefy/internal/catalog"
	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	gotProfile map[string]any
	gotTopN    int
	recs       []types.Recommendation
	rebuildErr error
	stats      types.CatalogStats
}

func (f *fakeEngine) Recommend(_ context.Context, raw map[string]any, topN int) []types.Recommendation {
	f.gotProfile = raw
	f.gotTopN = topN
	return f.recs
}

func (f *fakeEngine) Rebuild(context.Context) error { return f.rebuildErr }

func (f *fakeEngine) Stats() types.CatalogStats { return f.stats }

func newTestServer(engine Recommender) *Server {
	return New(Config{Port: 0, DefaultTopN: 10}, engine, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestServer(&fakeEngine{}).Handler()

	for _, path := range []string{"/api", "/api/", "/health"} {
		rec := do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "MOVIEFY API is running", resp.Message)
	}
}

func TestRecommendations_ProfileBody(t *testing.T) {
	engine := &fakeEngine{recs: []types.Recommendation{{ID: 1, Title: "Moneyball", MatchScore: 1}}}
	h := newTestServer(engine).Handler()

	rec := do(t, h, http.MethodPost, "/api/recommendations",
		`{"found_skills":["analytics"],"industry":"Business","top_n":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Moneyball", resp.Recommendations[0].Title)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, rec.Header().Get(requestIDHeader))

	assert.Equal(t, 5, engine.gotTopN)
	assert.Equal(t, "Business", engine.gotProfile["industry"])
}

func TestRecommendations_EnvelopeBodyAndDefaultTopN(t *testing.T) {
	engine := &fakeEngine{}
	h := newTestServer(engine).Handler()

	rec := do(t, h, http.MethodPost, "/api/recommendations", `{"profile":{"industry":"Finance"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 10, engine.gotTopN)
	assert.Equal(t, map[string]any{"industry": "Finance"}, engine.gotProfile)
	// A nil slice from the engine still serializes as a list.
	assert.Contains(t, rec.Body.String(), `"recommendations":[]`)
}

func TestRecommendations_ZeroTopNUsesDefault(t *testing.T) {
	engine := &fakeEngine{}
	h := newTestServer(engine).Handler()

	rec := do(t, h, http.MethodPost, "/api/recommendations", `{"industry":"Finance","top_n":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, engine.gotTopN)
}

func TestRecommendations_BadRequests(t *testing.T) {
	h := newTestServer(&fakeEngine{}).Handler()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"industry":`, "invalid request body"},
		{"null body", `null`, "profile"},
		{"profile not object", `{"profile":"x"}`, "profile"},
		{"top_n string", `{"top_n":"5"}`, "top_n"},
		{"top_n fractional", `{"top_n":2.5}`, "top_n"},
		{"top_n too large", `{"top_n":16}`, "top_n"},
		{"top_n negative", `{"top_n":-1}`, "top_n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/recommendations", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestRecommendations_RealEngine(t *testing.T) {
	engine := recommend.NewEngine(catalog.NewFileStore("../../testdata/catalog.json"),
		recommend.WithLogger(zerolog.Nop()))
	h := newTestServer(engine).Handler()

	rec := do(t, h, http.MethodPost, "/api/recommendations", `{
		"found_skills": ["analytics"],
		"skill_gaps": ["leadership"],
		"industry": "Business",
		"career_stage": "Mid-Level",
		"vibe": "Pragmatic Builder",
		"top_n": 3
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, 1.0, resp.Recommendations[0].MatchScore)

	rec = do(t, h, http.MethodPost, "/api/recommendations", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"recommendations":[]`)
}

func TestIndexEndpoints(t *testing.T) {
	engine := &fakeEngine{stats: types.CatalogStats{Items: 33, Features: 900, Ready: true}}
	h := newTestServer(engine).Handler()

	rec := do(t, h, http.MethodGet, "/api/index", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats types.CatalogStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 33, stats.Items)

	rec = do(t, h, http.MethodPost, "/api/index/rebuild", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	engine.rebuildErr = errors.New("connection refused")
	rec = do(t, h, http.MethodPost, "/api/index/rebuild", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(&fakeEngine{}).Handler()
	do(t, h, http.MethodGet, "/health", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "moviefy_http_request_duration_seconds")
}

func TestRequestID_Propagated(t *testing.T) {
	h := newTestServer(&fakeEngine{}).Handler()
	id := "3f1c2b9e-8a7d-4c6b-9e5f-0a1b2c3d4e5f"

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	s := New(Config{CORSOrigins: []string{"https://moviefy.example"}}, &fakeEngine{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/api/recommendations", nil)
	req.Header.Set("Origin", "https://moviefy.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://moviefy.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := New(Config{RateLimit: 2, RateWindow: time.Minute}, &fakeEngine{}, zerolog.Nop())
	h := s.Handler()

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "203.0.113.7:4242"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(&fakeEngine{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "top_n"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrMalformedBody{Cause: errors.New("eof")}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
