package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var p domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.payments.Record(r.Context(), mux.Vars(r)["id"], &p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PaymentHandler) ListByContract(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListByContract(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
