package http

import (
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/tracking"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/middleware"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type TrackingHandler interface {
	StartShift(w http.ResponseWriter, r *http.Request)
	EndShift(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	SubmitPhoto(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	WorkTime(w http.ResponseWriter, r *http.Request)
}

type trackingHandlerImpl struct {
	trackingService tracking.TrackingService
}

func NewTrackingHandler(trackingService tracking.TrackingService) TrackingHandler {
	return &trackingHandlerImpl{
		trackingService: trackingService,
	}
}

// StartShift implements TrackingHandler.
func (h *trackingHandlerImpl) StartShift(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.StartShift(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift started", result)
}

// EndShift implements TrackingHandler.
func (h *trackingHandlerImpl) EndShift(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.EndShift(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift ended", result)
}

// StartBreak implements TrackingHandler.
func (h *trackingHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.StartBreak(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break started", result)
}

// EndBreak implements TrackingHandler.
func (h *trackingHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.EndBreak(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}

// SubmitPhoto implements TrackingHandler. The gateway stores the photo itself;
// the log only records that one arrived during an active shift.
func (h *trackingHandlerImpl) SubmitPhoto(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.SubmitPhoto(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Photo recorded", result)
}

// Status implements TrackingHandler.
func (h *trackingHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.Status(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WorkTime implements TrackingHandler. Reports the latest shift's start and,
// when the shift is over, its end.
func (h *trackingHandlerImpl) WorkTime(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	result, err := h.trackingService.LastShiftWindow(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
