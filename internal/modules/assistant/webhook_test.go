package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flupretail/flup-backend/internal/modules/checkout"
)

func TestChat_RelaysMessageAndParsesJSONReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how are sales today?", req.Message)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChatResponse{Reply: "Sales are up 12%."})
	}))
	defer srv.Close()

	client := NewWebhookClient(WebhookURLs{Chat: srv.URL}, zerolog.Nop())

	reply, err := client.Chat(context.Background(), ChatRequest{Message: "how are sales today?"})
	require.NoError(t, err)
	assert.Equal(t, "Sales are up 12%.", reply)
}

func TestChat_PlainTextReplyPassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain answer"))
	}))
	defer srv.Close()

	client := NewWebhookClient(WebhookURLs{Chat: srv.URL}, zerolog.Nop())

	reply, err := client.Chat(context.Background(), ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "plain answer", reply)
}

func TestChat_NotConfigured(t *testing.T) {
	client := NewWebhookClient(WebhookURLs{}, zerolog.Nop())

	_, err := client.Chat(context.Background(), ChatRequest{Message: "hi"})
	assert.Error(t, err)
}

func TestSaleCompleted_PostsNotification(t *testing.T) {
	got := make(chan map[string]interface{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		got <- payload
	}))
	defer srv.Close()

	client := NewWebhookClient(WebhookURLs{Notify: srv.URL}, zerolog.Nop())

	err := client.SaleCompleted(context.Background(), checkout.Confirmation{
		OrderID:      42,
		CustomerName: "Walk-in",
		Total:        127.60,
		CompletedAt:  time.Now(),
	})
	require.NoError(t, err)

	payload := <-got
	assert.Equal(t, float64(42), payload["order_id"])
	assert.Contains(t, payload["message"], "Sale #42")
}

func TestSaleCompleted_NoURLIsSilentNoOp(t *testing.T) {
	client := NewWebhookClient(WebhookURLs{}, zerolog.Nop())

	err := client.SaleCompleted(context.Background(), checkout.Confirmation{OrderID: 1})
	assert.NoError(t, err)
}

func TestSaleCompleted_ErrorStatusReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewWebhookClient(WebhookURLs{Notify: srv.URL}, zerolog.Nop())

	err := client.SaleCompleted(context.Background(), checkout.Confirmation{OrderID: 1})
	assert.Error(t, err)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWebhookClient(WebhookURLs{Reorder: srv.URL}, zerolog.Nop())
	req := ReorderRequest{SKU: "SKU-1", Quantity: 10, Reason: "low stock"}

	for i := 0; i < 5; i++ {
		assert.Error(t, client.Reorder(context.Background(), req))
	}
	assert.Equal(t, 5, hits)

	// Breaker is open now: the call fails fast without reaching the host.
	assert.Error(t, client.Reorder(context.Background(), req))
	assert.Equal(t, 5, hits)
}
