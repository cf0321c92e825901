package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dayoff"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/middleware"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type DayOffHandler interface {
	Available(w http.ResponseWriter, r *http.Request)
	Book(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type dayOffHandlerImpl struct {
	dayOffService dayoff.DayOffService
}

func NewDayOffHandler(dayOffService dayoff.DayOffService) DayOffHandler {
	return &dayOffHandlerImpl{
		dayOffService: dayOffService,
	}
}

// Available implements DayOffHandler.
func (h *dayOffHandlerImpl) Available(w http.ResponseWriter, r *http.Request) {
	result, err := h.dayOffService.AvailableDates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Book implements DayOffHandler.
func (h *dayOffHandlerImpl) Book(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	var req dayoff.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.dayOffService.Book(r.Context(), u.ID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Day off booked", result)
}

// List implements DayOffHandler.
func (h *dayOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.dayOffService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel implements DayOffHandler.
func (h *dayOffHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.dayOffService.Cancel(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day-off booking cancelled", nil)
}
