package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/steam-price-tracker/internal/engine"
	"github.com/donaldgifford/steam-price-tracker/pkg/logger"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// mockRunner implements CheckRunner for testing.
type mockRunner struct {
	summary *domain.CheckSummary
	err     error
	running bool
	calls   atomic.Int32
	done    chan struct{}
}

func (m *mockRunner) RunCheck(context.Context) (*domain.CheckSummary, error) {
	m.calls.Add(1)
	if m.done != nil {
		defer close(m.done)
	}
	return m.summary, m.err
}

func (m *mockRunner) Running() bool { return m.running }

func newCheckAPI(t *testing.T, r *mockRunner) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	RegisterCheckRoutes(api, NewCheckHandler(context.Background(), r, logger.Discard()))
	return api
}

func TestCheckHandler_Async(t *testing.T) {
	t.Parallel()

	r := &mockRunner{summary: &domain.CheckSummary{}, done: make(chan struct{})}
	api := newCheckAPI(t, r)

	resp := api.Post("/api/v1/check")
	require.Equal(t, http.StatusAccepted, resp.Code)
	assert.JSONEq(t, `{"status":"check started"}`, resp.Body.String())

	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("background check never ran")
	}
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestCheckHandler_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		summary    *domain.CheckSummary
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "returns summary",
			summary:    &domain.CheckSummary{Checked: 3, Changed: 1},
			wantStatus: http.StatusOK,
			wantBody:   `"changed":1`,
		},
		{
			name:       "partial failure still returns summary",
			summary:    &domain.CheckSummary{Checked: 2},
			err:        errors.New("recording price: disk full"),
			wantStatus: http.StatusOK,
			wantBody:   `"checked":2`,
		},
		{
			name:       "cycle could not start",
			err:        errors.New("listing games: boom"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "lost race with scheduler",
			err:        engine.ErrCheckInProgress,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newCheckAPI(t, &mockRunner{summary: tt.summary, err: tt.err})

			resp := api.Post("/api/v1/check?wait=true")
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCheckHandler_AlreadyRunning(t *testing.T) {
	t.Parallel()

	r := &mockRunner{running: true}
	api := newCheckAPI(t, r)

	resp := api.Post("/api/v1/check")
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "check already in progress")
	assert.Zero(t, r.calls.Load())
}

// blockingRunner holds RunCheck open until release is closed.
type blockingRunner struct {
	started  chan struct{}
	release  chan struct{}
	finished atomic.Bool
}

func (b *blockingRunner) RunCheck(context.Context) (*domain.CheckSummary, error) {
	close(b.started)
	<-b.release
	b.finished.Store(true)
	return &domain.CheckSummary{}, nil
}

func (*blockingRunner) Running() bool { return false }

func TestCheckHandler_WaitForBackgroundCheck(t *testing.T) {
	t.Parallel()

	r := &blockingRunner{started: make(chan struct{}), release: make(chan struct{})}
	h := NewCheckHandler(context.Background(), r, logger.Discard())
	_, api := humatest.New(t)
	RegisterCheckRoutes(api, h)

	resp := api.Post("/api/v1/check")
	require.Equal(t, http.StatusAccepted, resp.Code)
	<-r.started

	waited := make(chan struct{})
	go func() {
		h.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while the check was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(r.release)
	select {
	case <-waited:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait never returned")
	}
	assert.True(t, r.finished.Load())
}
