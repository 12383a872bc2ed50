package venue

import (
	"encoding/json"
	"net/http"

	"github.com/viant/venuely/pkg/venue"
)

// Handler serves the venue REST resource from a Store.
type Handler struct {
	store *Store
	mux   *http.ServeMux
}

// New returns a handler exposing /venues backed by store. A nil store is
// replaced with an empty one.
func New(store *Store) *Handler {
	if store == nil {
		store = NewStore()
	}
	h := &Handler{store: store, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /venues", h.list)
	h.mux.HandleFunc("POST /venues", h.create)
	h.mux.HandleFunc("GET /venues/{id}", h.get)
	h.mux.HandleFunc("PUT /venues/{id}", h.update)
	h.mux.HandleFunc("DELETE /venues/{id}", h.delete)
	return h
}

// Store returns the backing store.
func (h *Handler) Store() *Store { return h.store }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	v, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "venue not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	v, ok := decodeVenue(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.Create(v))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	v, ok := decodeVenue(w, r)
	if !ok {
		return
	}
	updated, ok := h.store.Update(id, v)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "venue not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.Delete(id) {
		writeError(w, http.StatusNotFound, codeNotFound, "venue not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeVenue(w http.ResponseWriter, r *http.Request) (*venue.Venue, bool) {
	var v venue.Venue
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return nil, false
	}
	return &v, true
}
