package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fleetrental-backend/internal/logger"
)

// NewRouter wires all handlers onto a mux router.
func NewRouter(
	contracts *ContractHandler,
	vehicles *VehicleHandler,
	schedule *ScheduleHandler,
	payments *PaymentHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/contracts", contracts.List).Methods(http.MethodGet)
	api.HandleFunc("/contracts", contracts.Create).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}", contracts.Get).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}", contracts.Update).Methods(http.MethodPut)
	api.HandleFunc("/contracts/{id}", contracts.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/contracts/{id}/segments", contracts.Segments).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}/vehicle", vehicles.ResolveForContract).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}/payments", payments.Record).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}/payments", payments.ListByContract).Methods(http.MethodGet)

	api.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", vehicles.Create).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", vehicles.Update).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}", vehicles.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/schedule", schedule.MonthView).Methods(http.MethodGet)

	return r
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Handled request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
