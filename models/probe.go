package models

import "time"

// ProbeResult is the outcome of one request sent through a registered client.
type ProbeResult struct {
	ServiceKey string        `json:"service_key"`
	Path       string        `json:"path"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration"`
	TraceID    string        `json:"trace_id,omitempty"`
}
