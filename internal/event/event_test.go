package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	assert.Error(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: SpinRecorded}))
}

func TestNewSpinRecordedEvent(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	spin := &domain.Spin{ID: 9, ParticipantID: 3, RouletteID: 1, IsExtra: true, CreatedAt: at}

	evt := NewSpinRecordedEvent(spin, 4, false)
	assert.Equal(t, SpinRecorded, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[domain.SpinRecordedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(9), payload.SpinID)
	assert.Equal(t, domain.SpinKindExtra, payload.Kind)
	assert.Equal(t, 4, payload.Counter)
	assert.Equal(t, at.Unix(), payload.Timestamp)
}

func TestNewAwardGrantedEvent(t *testing.T) {
	grant := &domain.ParticipantAward{ID: 5, CreatedAt: time.Now()}
	roulette := &domain.Roulette{ID: 1, Name: "Summer"}
	award := &domain.Award{ID: 2, Name: "T-shirt", MinSpins: 3}
	participant := &domain.Participant{ID: 7, Name: "Ana", Email: "ana@example.com"}

	evt := NewAwardGrantedEvent(grant, roulette, award, participant)
	assert.Equal(t, AwardGranted, evt.Type)
	assert.Equal(t, int64(1), evt.GetMetadataValue("roulette_id"))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[domain.AwardGrantedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "T-shirt", payload.AwardName)
	assert.Equal(t, "ana@example.com", payload.ParticipantEmail)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"roulette_id": 4, "slug": "summer"}
	payload, err := DecodePayload[domain.RouletteUpdatedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, int64(4), payload.RouletteID)
	assert.Equal(t, "summer", payload.Slug)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
}
