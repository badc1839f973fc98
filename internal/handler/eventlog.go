package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/RouletteCampaign_Go/internal/eventlog"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
)

// EventLogHandler serves the campaign audit trail to admins
type EventLogHandler struct {
	service eventlog.Service
}

// NewEventLogHandler creates a new event log handler
func NewEventLogHandler(service eventlog.Service) *EventLogHandler {
	return &EventLogHandler{service: service}
}

// HandleListEvents lists audit events for one roulette, newest first
// @Summary List roulette events
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Roulette ID"
// @Param type query string false "Event type, e.g. spin.recorded"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} eventlog.Event
// @Failure 400 {object} ErrorResponse
// @Failure 401 {string} string
// @Router /api/v1/admin/roulettes/{id}/events [get]
func (h *EventLogHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamID)
	if !ok {
		return
	}

	filter, ok := parseEventFilter(w, r)
	if !ok {
		return
	}
	filter.RouletteID = &id

	events, err := h.service.ListEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListEventsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func parseEventFilter(w http.ResponseWriter, r *http.Request) (eventlog.EventFilter, bool) {
	var filter eventlog.EventFilter
	q := r.URL.Query()

	if t := q.Get(QueryEventType); t != "" {
		filter.EventType = &t
	}

	if raw := q.Get(QueryLimit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			logger.FromContext(r.Context()).Warn("Invalid query parameter", "param", QueryLimit)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidQuery)
			return filter, false
		}
		filter.Limit = limit
	}

	if raw := q.Get(QuerySince); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Invalid query parameter", "param", QuerySince)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidQuery)
			return filter, false
		}
		filter.Since = &since
	}

	return filter, true
}
