package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes assistant HTTP endpoints.
type Handler struct{ client *WebhookClient }

func NewHandler(client *WebhookClient) *Handler { return &Handler{client: client} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/assistant", func(r chi.Router) {
		r.Post("/chat", h.chat)       // POST /api/v1/assistant/chat
		r.Post("/reorder", h.reorder) // POST /api/v1/assistant/reorder
	})
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}
	reply, err := h.client.Chat(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, ChatResponse{Reply: reply})
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.SKU == "" || req.Quantity <= 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "sku and a positive quantity are required"})
		return
	}
	if err := h.client.Reorder(r.Context(), req); err != nil {
		respond(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]bool{"sent": true})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
