package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/workhub-team/workhub/internal/infrastructure/cache"
	"github.com/workhub-team/workhub/internal/usecase/meeting"
	"github.com/workhub-team/workhub/pkg/config"
)

// WebhookNotifier posts mention notifications to a configured webhook.
// Delivery is best-effort: transient failures are retried with exponential
// backoff inside the transport, and the engine never sees an error as fatal.
// A dedup window suppresses repeat alerts for the same entity/handle pair.
type WebhookNotifier struct {
	url         string
	client      *http.Client
	maxElapsed  time.Duration
	dedupWindow time.Duration
	dedup       *cache.MemoryStore
	logger      *zap.Logger
}

// NewWebhookNotifier creates a new webhook notifier
func NewWebhookNotifier(cfg config.NotifyConfig, logger *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:         cfg.WebhookURL,
		client:      &http.Client{Timeout: cfg.RequestTimeout},
		maxElapsed:  cfg.MaxElapsedTime,
		dedupWindow: cfg.DedupWindow,
		dedup:       cache.NewMemoryStore(),
		logger:      logger,
	}
}

// Notify delivers one mention notification, deduplicating within the
// configured window.
func (n *WebhookNotifier) Notify(ctx context.Context, m meeting.MentionNotification) error {
	if n.url == "" {
		return nil
	}

	dedupKey := fmt.Sprintf("mention:%s:%s:%s", m.EntityType, m.EntityID, m.Handle)
	if n.dedupWindow > 0 && !n.dedup.SetIfAbsent(dedupKey, m.ActorUID, n.dedupWindow) {
		n.logger.Debug("mention suppressed by dedup window",
			zap.String("entity_id", m.EntityID),
			zap.String("handle", m.Handle),
		)
		return nil
	}

	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("webhook rejected notification: status %d", resp.StatusCode))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = n.maxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("failed to deliver mention notification: %w", err)
	}
	return nil
}
