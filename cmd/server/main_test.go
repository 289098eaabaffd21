package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/events"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/platform/config"
)

func TestBuildEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := buildEngine(config.EngineConfig{})
		require.NoError(t, err)
		assert.Equal(t, numerology.ReduceSingle, engine.Reduction())
		assert.Equal(t, numerology.OverflowSubtract, engine.Overflow())
	})

	t.Run("alternatives", func(t *testing.T) {
		engine, err := buildEngine(config.EngineConfig{ReductionPolicy: "iterative", OverflowPolicy: "cap", DefaultGender: "female"})
		require.NoError(t, err)
		assert.Equal(t, numerology.ReduceIterative, engine.Reduction())
		assert.Equal(t, numerology.OverflowCap, engine.Overflow())
	})

	t.Run("unknown values are rejected", func(t *testing.T) {
		_, err := buildEngine(config.EngineConfig{ReductionPolicy: "twice"})
		assert.ErrorContains(t, err, "REDUCTION_POLICY")
		_, err = buildEngine(config.EngineConfig{OverflowPolicy: "wrap"})
		assert.ErrorContains(t, err, "OVERFLOW_POLICY")
		_, err = buildEngine(config.EngineConfig{DefaultGender: "other"})
		assert.ErrorContains(t, err, "DEFAULT_GENDER")
	})
}

func TestLoadTablesDefaultsToEmbedded(t *testing.T) {
	tables, err := loadTables("")
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Interpretations)

	_, err = loadTables(t.TempDir())
	assert.Error(t, err)
}

func TestBuildInfraMemory(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	in, err := buildInfra(context.Background(), config.Server{ProfileStore: config.StoreMemory}, log)
	require.NoError(t, err)
	defer in.Close()

	assert.NotNil(t, in.profiles)
	assert.NotNil(t, in.worker)
	assert.Empty(t, in.checks)
}

func TestBuildStoreRejectsUnknownBackend(t *testing.T) {
	_, err := buildStore(context.Background(), config.Server{ProfileStore: "mongo"}, &infra{checks: map[string]healthCheck{}})
	assert.ErrorContains(t, err, "unknown PROFILE_STORE")
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := healthHandler(map[string]healthCheck{"redis": func(context.Context) error { return nil }})
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"healthy": true, "checks": {"redis": "ok"}}`, rr.Body.String())
	})

	t.Run("failing dependency", func(t *testing.T) {
		h := healthHandler(map[string]healthCheck{"postgres": func(context.Context) error { return errors.New("refused") }})
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"healthy": false, "checks": {"postgres": "refused"}}`, rr.Body.String())
	})
}

// A request still running when shutdown starts must get its event delivered.
func TestShutdownStopsWorkerAfterInflightRequests(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := events.NewMemorySink()
	worker := events.NewWorker(sink, 4, log)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan error, 1)
	go func() { workerDone <- worker.Run(workerCtx) }()

	entered := make(chan struct{})
	release := make(chan struct{})
	emitErr := make(chan error, 1)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		emitErr <- worker.Emit(r.Context(), events.Event{Type: events.TypeProfileSaved})
		w.WriteHeader(http.StatusOK)
	})}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(ln) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-entered

	shutdownDone := make(chan error, 1)
	go func() { shutdownDone <- shutdown(srv, stopWorker, log) }()

	// give Shutdown time to start waiting on the active connection
	time.Sleep(50 * time.Millisecond)
	select {
	case <-workerDone:
		t.Fatal("worker stopped before in-flight requests finished")
	default:
	}

	close(release)
	require.NoError(t, <-emitErr)
	require.NoError(t, <-shutdownDone)
	assert.ErrorIs(t, <-workerDone, context.Canceled)
	assert.Len(t, sink.Events(), 1)
}
