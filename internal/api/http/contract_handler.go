package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"
)

// ContractHandler serves the contract CRUD endpoints. Every read path
// returns recalculated records; the service corrects storage underneath.
type ContractHandler struct {
	contracts service.ContractService
}

func NewContractHandler(contracts service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contracts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	writeJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.contracts.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.contracts.Create(r.Context(), &c)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch service.ContractPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.contracts.Update(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contracts.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Segments exposes the day attribution used by reporting views.
func (h *ContractHandler) Segments(w http.ResponseWriter, r *http.Request) {
	segments, err := h.contracts.Segments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, segments)
}
