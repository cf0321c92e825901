package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/middleware"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Me implements UserHandler.
func (h *userHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User identity missing")
		return
	}

	response.Success(w, user.ToResponse(u))
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.userService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements UserHandler.
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", result)
}

// Delete implements UserHandler.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
