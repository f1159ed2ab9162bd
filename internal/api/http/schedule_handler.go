package http

import (
	"net/http"
	"strconv"
	"time"

	"fleetrental-backend/internal/service"
)

type ScheduleHandler struct {
	schedule service.ScheduleService
	now      func() time.Time
}

func NewScheduleHandler(schedule service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, now: time.Now}
}

// MonthView serves the Gantt calendar: one row of blocks per vehicle for
// the requested month. Missing year/month default to the current month.
func (h *ScheduleHandler) MonthView(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()
	year := now.Year()
	month := now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(m)
	}

	rows, err := h.schedule.MonthView(r.Context(), year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
