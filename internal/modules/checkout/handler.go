package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes checkout HTTP endpoints.
type Handler struct{ coordinator *Coordinator }

func NewHandler(coordinator *Coordinator) *Handler { return &Handler{coordinator: coordinator} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Post("/begin", h.begin)    // POST /api/v1/checkout/begin
		r.Post("/cancel", h.cancel)  // POST /api/v1/checkout/cancel
		r.Post("/submit", h.submit)  // POST /api/v1/checkout/submit
		r.Get("/status", h.status)   // GET  /api/v1/checkout/status
	})
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "default"
}

func (h *Handler) begin(w http.ResponseWriter, r *http.Request) {
	view, err := h.coordinator.Begin(r.Context(), sessionID(r))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	view, err := h.coordinator.Cancel(sessionID(r))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	conf, err := h.coordinator.Submit(r.Context(), sessionID(r), PaymentMethod(req.PaymentMethod))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, conf)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.coordinator.Status(sessionID(r)))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidPayment):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotAwaitingPayment):
		return http.StatusConflict
	case errors.Is(err, ErrSubmitInFlight):
		return http.StatusTooManyRequests
	default:
		// Transactional failures are recoverable: the cart is intact and
		// the user may retry.
		return http.StatusBadGateway
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
