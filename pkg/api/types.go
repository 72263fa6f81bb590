package api

import (
	"time"

	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// EventResponse is a page of raw events.
type EventResponse struct {
	Events     []*store.RawEvent `json:"events"`
	Pagination PaginationResult  `json:"pagination"`
}

// PaginationResult contains pagination metadata.
type PaginationResult struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Contracts []*store.ContractStats `json:"contracts"`
}

// QueueResponse reports the depth of one queue.
type QueueResponse struct {
	Name  string `json:"name"`
	Depth int64  `json:"depth"`
}
