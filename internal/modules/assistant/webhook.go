package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/flupretail/flup-backend/internal/modules/checkout"
)

// WebhookURLs holds the workflow-automation endpoints the client talks to.
// Empty URLs disable the corresponding call.
type WebhookURLs struct {
	Chat    string
	Notify  string
	Reorder string
}

// WebhookClient posts JSON payloads to the external workflow webhooks. All
// calls share one circuit breaker: when the automation host is down the
// breaker fails fast instead of tying up checkout goroutines on timeouts.
type WebhookClient struct {
	urls    WebhookURLs
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     zerolog.Logger
}

func NewWebhookClient(urls WebhookURLs, log zerolog.Logger) *WebhookClient {
	settings := gobreaker.Settings{
		Name:    "assistant-webhook",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &WebhookClient{
		urls:    urls,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		log:     log,
	}
}

// Chat relays one conversation turn and returns the assistant's reply text.
func (c *WebhookClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if c.urls.Chat == "" {
		return "", fmt.Errorf("chat webhook is not configured")
	}
	body, err := c.post(ctx, c.urls.Chat, req)
	if err != nil {
		return "", err
	}

	// The workflow may answer JSON {"reply": ...} or plain text.
	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Reply != "" {
		return resp.Reply, nil
	}
	return string(body), nil
}

// SaleCompleted implements checkout.Notifier: a fire-and-forget text ping
// about the new sale. The coordinator logs failures and never surfaces them.
func (c *WebhookClient) SaleCompleted(ctx context.Context, conf checkout.Confirmation) error {
	if c.urls.Notify == "" {
		return nil
	}
	payload := map[string]interface{}{
		"message": fmt.Sprintf("Sale #%d completed. Total: $%.2f (%s)",
			conf.OrderID, conf.Total, conf.CustomerName),
		"order_id": conf.OrderID,
		"total":    conf.Total,
	}
	_, err := c.post(ctx, c.urls.Notify, payload)
	return err
}

// Reorder asks the workflow to raise a restock request.
func (c *WebhookClient) Reorder(ctx context.Context, req ReorderRequest) error {
	if c.urls.Reorder == "" {
		return fmt.Errorf("reorder webhook is not configured")
	}
	_, err := c.post(ctx, c.urls.Reorder, req)
	return err
}

func (c *WebhookClient) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		out, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 300 {
			return nil, fmt.Errorf("webhook returned %s", resp.Status)
		}
		return out, nil
	})
}
