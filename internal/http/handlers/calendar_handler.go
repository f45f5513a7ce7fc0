// README: Calendar handler for the month-grid projection.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vanrent/internal/modules/calendar"
)

type CalendarHandler struct {
	calendar *calendar.Service
}

func NewCalendarHandler(svc *calendar.Service) *CalendarHandler {
	return &CalendarHandler{calendar: svc}
}

func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(c, http.StatusBadRequest, "invalid month")
		return
	}

	view, err := h.calendar.MonthView(c.Request.Context(), year, time.Month(month))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}
