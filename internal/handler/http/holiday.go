package http

import (
	"net/http"

	"github.com/cmlabs-hris/lms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	calendar *calendar.Calendar
}

func NewHolidayHandler(cal *calendar.Calendar) HolidayHandler {
	return &holidayHandlerImpl{calendar: cal}
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays := h.calendar.Holidays()
	dates := make([]string, 0, len(holidays))
	for _, hd := range holidays {
		dates = append(dates, calendar.FormatDate(hd.Date))
	}
	response.Success(w, dates)
}
