package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/truestock/truestock/internal/domain"
)

// addProductRequest keeps numeric fields textual; the engine parses them.
type addProductRequest struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type movementRequest struct {
	Quantity string `json:"quantity"`
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := a.svc.Search(q.Get("name"), q.Get("category"))
	writeJSON(w, http.StatusOK, map[string]any{"data": products})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := a.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, domain.Invalid("body", "invalid JSON body"))
		return
	}
	p, err := a.svc.AddProduct(req.ID, req.Category, req.Name, req.Price, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (a *API) handleRemove(w http.ResponseWriter, r *http.Request) {
	if err := a.svc.RemoveProduct(chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleRestock(w http.ResponseWriter, r *http.Request) {
	a.handleMovement(w, r, a.svc.RestockProduct)
}

func (a *API) handleReserve(w http.ResponseWriter, r *http.Request) {
	a.handleMovement(w, r, a.svc.ReserveProduct)
}

func (a *API) handleMovement(w http.ResponseWriter, r *http.Request, apply func(id, quantityText string) (domain.Product, error)) {
	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, domain.Invalid("body", "invalid JSON body"))
		return
	}
	p, err := apply(chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Summary())
}
