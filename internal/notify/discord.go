// Package notify announces award wins to a Discord channel through a webhook.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/internal/metrics"
	"github.com/osse101/RouletteCampaign_Go/internal/worker"
)

// ErrNotConfigured is returned when the webhook id or token is missing
var ErrNotConfigured = errors.New("discord webhook not configured")

// WebhookSender executes a Discord webhook. *discordgo.Session implements it.
type WebhookSender interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the webhook credentials
type Config struct {
	WebhookID    string
	WebhookToken string
	Username     string
}

// Enabled reports whether both webhook credentials are set
func (c Config) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// Notifier posts an embed for every granted award. Deliveries run on a worker pool.
type Notifier struct {
	sender WebhookSender
	config Config
	pool   *worker.Pool
}

// NewDiscordNotifier creates a notifier backed by an unauthenticated discordgo session
func NewDiscordNotifier(cfg Config, pool *worker.Pool) (*Notifier, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	// Webhook execution is authorized by the webhook token, not a bot token
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return NewNotifier(s, cfg, pool), nil
}

// NewNotifier creates a notifier using the given sender
func NewNotifier(sender WebhookSender, cfg Config, pool *worker.Pool) *Notifier {
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	return &Notifier{sender: sender, config: cfg, pool: pool}
}

// Subscribe registers the notifier for award grants
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.AwardGranted, n.handleAwardGranted)
}

func (n *Notifier) handleAwardGranted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.AwardGrantedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode award granted payload: %w", err)
	}

	job := worker.JobFunc(func(ctx context.Context) error {
		return n.Send(ctx, payload)
	})
	if !n.pool.TryEnqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgNotificationDropped, "participant_award_id", payload.ParticipantAwardID)
		metrics.NotificationsSent.WithLabelValues(metrics.ResultDropped).Inc()
	}
	return nil
}

// Send delivers one award notification synchronously
func (n *Notifier) Send(ctx context.Context, payload domain.AwardGrantedPayload) error {
	log := logger.FromContext(ctx)

	params := &discordgo.WebhookParams{
		Username: n.config.Username,
		Embeds:   []*discordgo.MessageEmbed{buildEmbed(payload)},
	}
	if _, err := n.sender.WebhookExecute(n.config.WebhookID, n.config.WebhookToken, false, params,
		discordgo.WithContext(ctx)); err != nil {
		metrics.NotificationsSent.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgNotificationFailed, "participant_award_id", payload.ParticipantAwardID, "error", err)
		return fmt.Errorf("failed to execute webhook: %w", err)
	}

	metrics.NotificationsSent.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgNotificationSent, "participant_award_id", payload.ParticipantAwardID)
	return nil
}

func buildEmbed(p domain.AwardGrantedPayload) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎉 %s won %s", p.ParticipantName, p.AwardName),
		Description: fmt.Sprintf("**Roulette:** %s\n**Threshold:** %d spins", p.RouletteName, p.MinSpins),
		Color:       EmbedColorWin,
		Timestamp:   time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooterText,
		},
	}
}
