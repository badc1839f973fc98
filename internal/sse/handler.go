package sse

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Handler returns an HTTP handler for SSE connections.
// Optional query parameters: roulette=<id> and types=<type,type>.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rouletteID int64
		if raw := r.URL.Query().Get(QueryRoulette); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				http.Error(w, ErrMsgInvalidRoulette, http.StatusBadRequest)
				return
			}
			rouletteID = id
		}

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		rc := http.NewResponseController(w)

		client := hub.Register(rouletteID, eventTypes)
		if client == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"roulette_id", rouletteID,
			"filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		send := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				slog.Warn(LogMsgFlushError, "error", err)
				return false
			}
			return true
		}

		connected := Event{
			ID:         client.ID,
			Type:       EventTypeConnected,
			RouletteID: rouletteID,
			Timestamp:  time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !send(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !send(evt) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
