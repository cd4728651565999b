package receipt

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes receipt HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/receipts", func(r chi.Router) {
		r.Get("/{order_id}", h.get)                 // GET /api/v1/receipts/{order_id}
		r.Get("/{order_id}/email-link", h.emailLink) // GET /api/v1/receipts/{order_id}/email-link
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid order_id"})
		return
	}
	rec, err := h.service.BuildReceipt(r.Context(), orderID)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rec)
}

func (h *Handler) emailLink(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid order_id"})
		return
	}
	email := r.URL.Query().Get("email")
	name := r.URL.Query().Get("name")
	respond(w, http.StatusOK, map[string]string{"link": EmailLink(orderID, email, name)})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
