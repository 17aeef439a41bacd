// Package dispatch contains the outbound contact adapters: a webhook
// dispatcher delivering prepared payloads per channel and a template
// composer producing them.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
)

// WebhookDispatcher implements port.Dispatcher by posting a JSON
// envelope to the channel's configured endpoint. The manual channel is
// a webhook like any other; its receiver is expected to open a task
// for a human operator.
type WebhookDispatcher struct {
	client    *http.Client
	endpoints map[domain.Channel]string
}

// NewWebhookDispatcher builds a dispatcher from the dispatch config
// section. Channels left without an endpoint stay registered but every
// attempt on them reports an unconfigured failure.
func NewWebhookDispatcher(cfg configs.Dispatch) *WebhookDispatcher {
	return &WebhookDispatcher{
		client: &http.Client{Timeout: cfg.Timeout},
		endpoints: map[domain.Channel]string{
			domain.ChannelDirect:  cfg.DirectURL,
			domain.ChannelWebForm: cfg.WebFormURL,
			domain.ChannelSMS:     cfg.SMSURL,
			domain.ChannelManual:  cfg.ManualURL,
		},
	}
}

type webhookEnvelope struct {
	Provider string `json:"provider"`
	Channel  string `json:"channel"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// Attempt delivers one payload over one channel. A missing endpoint or
// a non-2xx reply is an unsuccessful result; only transport-level
// problems become errors.
func (d *WebhookDispatcher) Attempt(ctx context.Context, provider domain.ProviderHandle, channel domain.Channel, payload domain.MessagePayload) (domain.DispatchResult, error) {
	endpoint := d.endpoints[channel]
	if endpoint == "" {
		return domain.DispatchResult{Channel: channel, Reason: "channel not configured"}, nil
	}

	body, err := json.Marshal(webhookEnvelope{
		Provider: string(provider),
		Channel:  string(channel),
		Subject:  payload.Subject,
		Body:     payload.Body,
	})
	if err != nil {
		return domain.DispatchResult{}, fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.DispatchResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.DispatchResult{
			Channel: channel,
			Reason:  fmt.Sprintf("endpoint returned %d", resp.StatusCode),
		}, nil
	}
	return domain.DispatchResult{Success: true, Channel: channel}, nil
}
