package sse

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the events that reach the public feed.
// Spin counters are never forwarded since they reveal award thresholds.
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.AwardGranted, s.handleAwardGranted)
	s.bus.Subscribe(event.RouletteUpdated, s.handleRouletteUpdated)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{string(event.AwardGranted), string(event.RouletteUpdated)})
}

func (s *Subscriber) handleAwardGranted(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.AwardGrantedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeWinner, p.RouletteID, WinnerPayload{
		RouletteID:   p.RouletteID,
		RouletteName: p.RouletteName,
		AwardName:    p.AwardName,
		Winner:       DisplayName(p.ParticipantName),
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeWinner,
		"roulette_id", p.RouletteID,
		"award_id", p.AwardID)
	return nil
}

func (s *Subscriber) handleRouletteUpdated(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RouletteUpdatedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRouletteChanged, p.RouletteID, RouletteChangedPayload{
		RouletteID: p.RouletteID,
		Slug:       p.Slug,
	})
	return nil
}

// DisplayName shortens a full name to the first name plus the initial of the
// last one, e.g. "Ana María Gómez" becomes "Ana G.".
func DisplayName(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	initial, _ := utf8.DecodeRuneInString(fields[len(fields)-1])
	return fields[0] + " " + string(initial) + "."
}
