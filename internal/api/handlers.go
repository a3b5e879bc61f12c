package api

import (
	"encoding/json"
	"net/http"

	"github.com/starford/ansuz/internal/dispatch"
	"github.com/starford/ansuz/internal/fingerprint"
)

// Handler holds API route handlers.
type Handler struct {
	d     *dispatch.Dispatcher
	rules *fingerprint.Ruleset
}

// NewHandler creates a new Handler.
func NewHandler(d *dispatch.Dispatcher, rules *fingerprint.Ruleset) *Handler {
	return &Handler{d: d, rules: rules}
}

// Inspect handles POST /api/inspect: classify and process a batch of
// targets, reporting successes, failures, and unknowns separately. A batch
// with failing targets is still a 200: per-target failure is part of the
// result, not a transport error.
func (h *Handler) Inspect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req InspectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if len(req.Targets) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("targets are required"))
		return
	}

	targets := h.d.Classify(req.Targets)
	results, failures := h.d.Process(targets)

	resp := InspectResponse{Results: results}
	if resp.Results == nil {
		resp.Results = []dispatch.Result{}
	}
	for _, f := range failures {
		resp.Failures = append(resp.Failures, FailureInfo{Target: f.Target, Error: f.Err.Error()})
	}
	for _, t := range targets {
		if t.Kind == fingerprint.KindUnknown {
			resp.Unknown = append(resp.Unknown, t.Input)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Classify handles GET /api/classify?target=<string>.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("target is required"))
		return
	}
	t := h.rules.Classify(target)
	writeJSON(w, http.StatusOK, ClassifyResponse{Target: t.Input, Kind: t.Kind})
}
