package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/operation"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type OperationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type operationHandlerImpl struct {
	operationRepo operation.OperationRepository
}

func NewOperationHandler(operationRepo operation.OperationRepository) OperationHandler {
	return &operationHandlerImpl{
		operationRepo: operationRepo,
	}
}

type operationResponse struct {
	ID        int64   `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	Kind      string  `json:"kind"`
	CreatedAt string  `json:"created_at"`
}

// List handles GET /admin/operations: the back-office view over the raw
// event log, newest first.
func (h *operationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := operation.ListFilter{}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind := operation.Kind(kindStr)
		if !kind.IsValid() {
			response.HandleError(w, operation.ErrInvalidKind)
			return
		}
		filter.Kind = &kind
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			response.BadRequest(w, "invalid from parameter", nil)
			return
		}
		filter.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			response.BadRequest(w, "invalid to parameter", nil)
			return
		}
		filter.To = &to
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			response.BadRequest(w, "invalid page parameter", nil)
			return
		}
		filter.Page = page
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			response.BadRequest(w, "invalid limit parameter", nil)
			return
		}
		filter.Limit = limit
	}

	ops, total, err := h.operationRepo.List(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]operationResponse, 0, len(ops))
	for _, op := range ops {
		items = append(items, operationResponse{
			ID:        op.ID,
			UserID:    op.UserID,
			UserName:  op.UserName,
			Kind:      string(op.Kind),
			CreatedAt: op.CreatedAt.Format(time.RFC3339),
		})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}
