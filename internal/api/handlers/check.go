package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/steam-price-tracker/internal/engine"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// CheckRunner runs price check cycles.
type CheckRunner interface {
	RunCheck(ctx context.Context) (*domain.CheckSummary, error)
	Running() bool
}

// CheckHandler handles manual check trigger requests.
type CheckHandler struct {
	runner  CheckRunner
	baseCtx context.Context
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewCheckHandler creates a new CheckHandler. Asynchronous checks run under
// baseCtx so they outlive the request but stop with the server.
func NewCheckHandler(baseCtx context.Context, r CheckRunner, log *slog.Logger) *CheckHandler {
	return &CheckHandler{runner: r, baseCtx: baseCtx, log: log}
}

// CheckInput selects synchronous or background execution.
type CheckInput struct {
	Wait bool `query:"wait" doc:"Block until the cycle finishes and return its summary"`
}

// CheckOutput is the response for the check endpoint. Summary is only set
// when the request waited for the cycle.
type CheckOutput struct {
	Status int
	Body   struct {
		Status  string               `json:"status"            example:"check started"`
		Summary *domain.CheckSummary `json:"summary,omitempty"`
	}
}

// Check triggers a price check cycle.
func (h *CheckHandler) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	if h.runner.Running() {
		return nil, huma.Error409Conflict(engine.ErrCheckInProgress.Error())
	}

	resp := &CheckOutput{}

	if input.Wait {
		summary, err := h.runner.RunCheck(ctx)
		switch {
		case errors.Is(err, engine.ErrCheckInProgress):
			return nil, huma.Error409Conflict(err.Error())
		case summary == nil:
			return nil, huma.Error500InternalServerError("check failed", err)
		}
		if err != nil {
			h.log.Warn("manual check finished with errors", "error", err)
		}
		resp.Status = http.StatusOK
		resp.Body.Status = "check completed"
		resp.Body.Summary = summary
		return resp, nil
	}

	h.wg.Go(func() {
		if _, err := h.runner.RunCheck(h.baseCtx); err != nil {
			if errors.Is(err, engine.ErrCheckInProgress) {
				h.log.Info("manual check skipped, cycle already running")
				return
			}
			h.log.Error("manual check failed", "error", err)
		}
	})

	resp.Status = http.StatusAccepted
	resp.Body.Status = "check started"
	return resp, nil
}

// Wait blocks until every background check started by Check has returned.
// Call it after the HTTP server stops accepting requests and before the
// store is closed.
func (h *CheckHandler) Wait() {
	h.wg.Wait()
}

// RegisterCheckRoutes registers the check trigger with the Huma API.
func RegisterCheckRoutes(api huma.API, h *CheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/check",
		Summary:     "Trigger a price check",
		Description: "Runs one check cycle outside the schedule: fetch every enabled game, " +
			"notify on changes, and store the new prices.",
		Tags:   []string{"check"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Check)
}
