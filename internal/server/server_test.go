package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(domain.DefaultConfiguration(), zap.New(core).Sugar()), logs
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestConfigEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "31", string(doc["current_age"]))
	assert.Equal(t, "5", string(doc["heirs"]))
}

func TestParametersEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/parameters")
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "current_age")
	assert.Contains(t, names, "peak.earner_two_income")
}

func TestProjectionDefaultsToJSON(t *testing.T) {
	s, logs := newTestServer(t)
	rec := get(t, s, "/projection")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc struct {
		TargetAge  int               `json:"target_age"`
		Projection []json.RawMessage `json:"projection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, 40, doc.TargetAge)
	assert.Len(t, doc.Projection, 55)

	assert.Equal(t, 1, logs.FilterMessage("projected 55 years from age 31 to 85").Len())
	assert.Equal(t, 1, logs.FilterMessage("request").Len())
}

func TestProjectionOverridesAndFormat(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/projection?format=csv&end_age=40")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 11, "header plus ages 31 to 40")
}

func TestProjectionPDF(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/projection?format=pdf&target_age=45")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestProjectionBadRequests(t *testing.T) {
	s, _ := newTestServer(t)
	for _, target := range []string{
		"/projection?no_such_field=1",
		"/projection?current_age=abc",
		"/projection?format=xml",
		"/projection?target_age=forty",
		"/projection?heirs=0",
		"/projection?end_age=2000000000",
		"/projection?current_age=-5",
	} {
		rec := get(t, s, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"error"`, target)
	}
}

func TestYearEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/projection/31")
	require.Equal(t, http.StatusOK, rec.Code)

	var a calculation.YearAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, 31, a.Snapshot.Age)
	assert.True(t, a.Snapshot.NetWorth.Equal(decimalInt(480300)), a.Snapshot.NetWorth.String())
	assert.Equal(t, 5, a.Legacy.Heirs)
}

func TestYearEndpointOutOfRange(t *testing.T) {
	s, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/projection/86").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/projection/40?end_age=39").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/projection/abc").Code, "route only matches digits")
}

func TestMilestonesEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/milestones")
	require.Equal(t, http.StatusOK, rec.Code)

	var milestones []calculation.Milestone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &milestones))
	require.NotEmpty(t, milestones)
	assert.Equal(t, "Start", milestones[0].Label)
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projection", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListenAndServeShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func decimalInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestProjectionTotalLossReturn(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/projection?primary_return=-100")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
