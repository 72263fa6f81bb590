package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// QueueInspector reports queue depths.
type QueueInspector interface {
	Depth(ctx context.Context, name string) (int64, error)
}

// Handler handles HTTP requests for the API.
type Handler struct {
	events    store.RawEventStore
	processor processor.EventHandler
	queues    QueueInspector
	log       *logger.Logger
	now       func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(events store.RawEventStore, proc processor.EventHandler, queues QueueInspector,
	log *logger.Logger) *Handler {
	return &Handler{
		events:    events,
		processor: proc,
		queues:    queues,
		log:       log,
		now:       time.Now,
	}
}

// Health returns the health status of the API and the ingestion progress of every contract.
// @Summary Health check
// @Description Check the health status of the API and the store
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "API health status"
// @Failure 503 {object} HealthResponse "Store unavailable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.events.Stats(r.Context())
	if err != nil {
		h.log.Errorf("health check failed: %v", err)
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unavailable",
			Timestamp: h.now(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
		Contracts: stats,
	})
}

// ListContracts returns ingestion and processing progress per contract.
// @Summary List contract progress
// @Description Get the last stored block and event counters of every contract
// @Tags Contracts
// @Produce json
// @Success 200 {array} store.ContractStats "Per contract progress"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /contracts [get]
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	stats, err := h.events.Stats(r.Context())
	if err != nil {
		h.log.Errorf("failed to get contract stats: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to get contract stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// ListEvents returns stored raw events ordered by id.
// @Summary List raw events
// @Description Retrieve stored raw events with optional filtering and pagination
// @Tags Events
// @Produce json
// @Param contract query string false "Contract name"
// @Param processed query bool false "Filter by processed flag"
// @Param limit query int false "Maximum number of events to return" default(100)
// @Param offset query int false "Number of events to skip" default(0)
// @Success 200 {object} EventResponse "List of events with pagination info"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid query parameters: %v", err))
		return
	}

	limit := filter.Limit
	// one extra row tells whether another page exists
	filter.Limit++

	events, err := h.events.List(r.Context(), filter)
	if err != nil {
		h.log.Errorf("failed to list events: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	hasMore := len(events) > limit
	if hasMore {
		events = events[:limit]
	}

	respondJSON(w, http.StatusOK, EventResponse{
		Events: events,
		Pagination: PaginationResult{
			Limit:   limit,
			Offset:  filter.Offset,
			HasMore: hasMore,
		},
	})
}

// GetEvent returns one raw event.
// @Summary Get a raw event
// @Tags Events
// @Produce json
// @Param id path int true "Raw event id"
// @Success 200 {object} store.RawEvent "Raw event"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Raw event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}

	event, err := h.events.Get(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, fmt.Sprintf("raw event %d not found", id))
	case err != nil:
		h.log.Errorf("failed to get raw event %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to get raw event")
	default:
		respondJSON(w, http.StatusOK, event)
	}
}

// ProcessEvent applies a raw event and every unprocessed event of its contract before it.
// @Summary Process a raw event
// @Description Replay processing of a raw event. Already processed events are reported as such.
// @Tags Events
// @Produce json
// @Param id path int true "Raw event id"
// @Success 200 {object} processor.Outcome "Processing outcome"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Raw event not found"
// @Failure 500 {object} ErrorResponse "Processing failed"
// @Router /events/{id}/process [post]
func (h *Handler) ProcessEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}

	outcome, err := h.processor.ProcessEvent(r.Context(), id)
	switch {
	case errors.Is(err, processor.ErrRawEventNotFound):
		respondError(w, http.StatusNotFound, fmt.Sprintf("raw event %d not found", id))
	case err != nil:
		h.log.Errorf("failed to process raw event %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		h.log.Infof("raw event %d processed on request: %s", id, outcome.Status)
		respondJSON(w, http.StatusOK, outcome)
	}
}

// GetQueue returns the depth of a declared queue.
// @Summary Get queue depth
// @Tags Queues
// @Produce json
// @Param name path string true "Queue name"
// @Success 200 {object} QueueResponse "Queue depth"
// @Failure 404 {object} ErrorResponse "Queue not declared"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /queues/{name} [get]
func (h *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "queue name is required")
		return
	}

	depth, err := h.queues.Depth(r.Context(), name)
	switch {
	case errors.Is(err, queue.ErrUnknownQueue):
		respondError(w, http.StatusNotFound, fmt.Sprintf("queue '%s' not found", name))
	case err != nil:
		h.log.Errorf("failed to get depth of queue %s: %v", name, err)
		respondError(w, http.StatusInternalServerError, "failed to get queue depth")
	default:
		respondJSON(w, http.StatusOK, QueueResponse{Name: name, Depth: depth})
	}
}

// parseListFilter parses HTTP query parameters into a store.ListFilter.
func parseListFilter(r *http.Request) (store.ListFilter, error) {
	filter := store.ListFilter{Limit: defaultLimit}
	query := r.URL.Query()

	if name := query.Get("contract"); name != "" {
		contract, err := itypes.ParseContract(name)
		if err != nil {
			return filter, err
		}
		filter.Contract = &contract
	}

	if processedStr := query.Get("processed"); processedStr != "" {
		processed, err := strconv.ParseBool(processedStr)
		if err != nil {
			return filter, fmt.Errorf("invalid processed: must be true or false")
		}
		filter.Processed = &processed
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxLimit {
			return filter, fmt.Errorf("invalid limit: must be between 1 and %d", maxLimit)
		}
		filter.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filter, fmt.Errorf("invalid offset: must be non-negative")
		}
		filter.Offset = offset
	}

	return filter, nil
}

func parseEventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid raw event id")
		return 0, false
	}
	return id, true
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// encode first so a failure can still change the status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
