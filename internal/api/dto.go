package api

import (
	"github.com/starford/ansuz/internal/dispatch"
	"github.com/starford/ansuz/internal/fingerprint"
)

// InspectRequest is the request body for an inspection batch.
type InspectRequest struct {
	Targets []string `json:"targets"`
}

// FailureInfo reports one target that could not be processed.
type FailureInfo struct {
	Target string `json:"target"`
	Error  string `json:"error"`
}

// InspectResponse aggregates one batch: successes in input order, failures
// and unrecognized targets reported separately.
type InspectResponse struct {
	Results  []dispatch.Result `json:"results"`
	Failures []FailureInfo     `json:"failures,omitempty"`
	Unknown  []string          `json:"unknown,omitempty"`
}

// ClassifyResponse reports the fingerprint of a single target string.
type ClassifyResponse struct {
	Target string           `json:"target"`
	Kind   fingerprint.Kind `json:"kind"`
}
