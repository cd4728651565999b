package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes cart HTTP endpoints. The POS session is identified by the
// X-Session-ID header; a missing header maps to the "default" counter session.
type Handler struct{ store *Store }

func NewHandler(store *Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getState)                            // GET    /api/v1/cart
		r.Post("/items", h.addItem)                       // POST   /api/v1/cart/items
		r.Put("/items/{variant_id}", h.updateQuantity)    // PUT    /api/v1/cart/items/{variant_id}
		r.Delete("/items/{variant_id}", h.removeItem)     // DELETE /api/v1/cart/items/{variant_id}
		r.Put("/customer", h.setCustomer)                 // PUT    /api/v1/cart/customer
		r.Delete("/", h.clear)                            // DELETE /api/v1/cart
	})
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "default"
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(sessionID(r))
	respond(w, http.StatusOK, c.State())
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var p Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if p.VariantID == 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "variant_id is required"})
		return
	}
	c := h.store.Get(sessionID(r))
	c.AddItem(p)
	respond(w, http.StatusOK, c.State())
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.ParseInt(chi.URLParam(r, "variant_id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid variant_id"})
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c := h.store.Get(sessionID(r))
	c.UpdateQuantity(variantID, req.Quantity)
	respond(w, http.StatusOK, c.State())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.ParseInt(chi.URLParam(r, "variant_id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid variant_id"})
		return
	}
	c := h.store.Get(sessionID(r))
	c.RemoveItem(variantID)
	respond(w, http.StatusOK, c.State())
}

func (h *Handler) setCustomer(w http.ResponseWriter, r *http.Request) {
	var ref *CustomerRef
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if ref != nil && ref.ID == nil && ref.Name == "" {
		ref = nil
	}
	c := h.store.Get(sessionID(r))
	c.SetCustomer(ref)
	respond(w, http.StatusOK, c.State())
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(sessionID(r))
	c.Clear()
	respond(w, http.StatusOK, c.State())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
