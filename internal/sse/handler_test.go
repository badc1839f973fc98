package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_InvalidRoulette(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream?roulette=abc", nil)
	rec := httptest.NewRecorder()
	Handler(hub)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?roulette=7&types=roulette.winner", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEventType := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEventType())
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeWinner, 7, WinnerPayload{RouletteID: 7, AwardName: "Mug"})
	assert.Equal(t, EventTypeWinner, readEventType())
}

func TestHandler_StoppedHub(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stream", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
