package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dayoff"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/operation"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/tracking"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserService resolves "admin" to an admin record and everything else to
// a regular user.
type fakeUserService struct{}

func (s *fakeUserService) Identify(_ context.Context, externalID string) (user.User, error) {
	return user.User{
		ID:         "id-" + externalID,
		ExternalID: externalID,
		IsAdmin:    externalID == "admin",
	}, nil
}

func (s *fakeUserService) Get(_ context.Context, id string) (user.UserResponse, error) {
	return user.UserResponse{ID: id}, nil
}

func (s *fakeUserService) List(_ context.Context) ([]user.UserResponse, error) {
	return []user.UserResponse{}, nil
}

func (s *fakeUserService) Update(_ context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	return user.UserResponse{ID: req.ID}, nil
}

func (s *fakeUserService) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeTrackingService struct {
	startShiftErr error
}

func (s *fakeTrackingService) IsShiftActive(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *fakeTrackingService) IsBreakActive(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *fakeTrackingService) Status(_ context.Context, _ string) (tracking.StatusResponse, error) {
	return tracking.StatusResponse{ShiftActive: true}, nil
}

func (s *fakeTrackingService) LastShiftWindow(_ context.Context, _ string) (tracking.ShiftWindowResponse, error) {
	return tracking.ShiftWindowResponse{}, tracking.ErrNoShiftRecorded
}

func (s *fakeTrackingService) StartShift(_ context.Context, _ string) (tracking.EventResponse, error) {
	if s.startShiftErr != nil {
		return tracking.EventResponse{}, s.startShiftErr
	}
	return tracking.EventResponse{Kind: "start_shift", RecordedAt: "05.03.2024 09:00:00"}, nil
}

func (s *fakeTrackingService) EndShift(_ context.Context, _ string) (tracking.EventResponse, error) {
	return tracking.EventResponse{Kind: "end_shift"}, nil
}

func (s *fakeTrackingService) StartBreak(_ context.Context, _ string) (tracking.EventResponse, error) {
	return tracking.EventResponse{Kind: "start_break"}, nil
}

func (s *fakeTrackingService) EndBreak(_ context.Context, _ string) (tracking.EventResponse, error) {
	return tracking.EventResponse{Kind: "end_break"}, nil
}

func (s *fakeTrackingService) SubmitPhoto(_ context.Context, _ string) (tracking.EventResponse, error) {
	return tracking.EventResponse{Kind: "photo_received"}, nil
}

type fakeDayOffService struct {
	bookErr error
}

func (s *fakeDayOffService) AvailableDates(_ context.Context) (dayoff.AvailableDatesResponse, error) {
	return dayoff.AvailableDatesResponse{From: "2024-03-07", To: "2024-04-04", Dates: []string{"2024-03-07"}}, nil
}

func (s *fakeDayOffService) Book(_ context.Context, userID string, req dayoff.BookRequest) (dayoff.BookingResponse, error) {
	if s.bookErr != nil {
		return dayoff.BookingResponse{}, s.bookErr
	}
	return dayoff.BookingResponse{Date: req.Date, UserID: userID}, nil
}

func (s *fakeDayOffService) List(_ context.Context) ([]dayoff.BookingResponse, error) {
	return []dayoff.BookingResponse{}, nil
}

func (s *fakeDayOffService) Cancel(_ context.Context, _ string) error {
	return nil
}

type fakeReportService struct{}

func (s *fakeReportService) GenerateAttendanceReport(_ context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}
	return report.AttendanceReport{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Groups:   []report.UserGroup{},
	}, nil
}

func (s *fakeReportService) EncodeCSV(_ report.AttendanceReport) ([]byte, error) {
	return []byte("Alice Smith\ndate,shift_start,shift_end,break_total\n"), nil
}

type fakeOperationRepo struct{}

func (r *fakeOperationRepo) Append(_ context.Context, userID string, kind operation.Kind) (operation.Operation, error) {
	return operation.Operation{UserID: userID, Kind: kind}, nil
}

func (r *fakeOperationRepo) LastOf(_ context.Context, _ string, _ operation.Kind) (*operation.Operation, error) {
	return nil, nil
}

func (r *fakeOperationRepo) CountAfter(_ context.Context, _ string, _ operation.Kind, _ operation.Operation) (int64, error) {
	return 0, nil
}

func (r *fakeOperationRepo) FirstAfter(_ context.Context, _ string, _ operation.Kind, _ operation.Operation) (*operation.Operation, error) {
	return nil, nil
}

func (r *fakeOperationRepo) ListBetween(_ context.Context, _ string, _ []operation.Kind, _, _ time.Time) ([]operation.Operation, error) {
	return nil, nil
}

func (r *fakeOperationRepo) ListByDayRange(_ context.Context, _ string, _ operation.Kind, _, _ time.Time) ([]operation.Operation, error) {
	return nil, nil
}

func (r *fakeOperationRepo) List(_ context.Context, _ operation.ListFilter) ([]operation.Operation, int64, error) {
	return []operation.Operation{}, 0, nil
}

func newTestRouter(t *testing.T, trackingSvc tracking.TrackingService, dayOffSvc dayoff.DayOffService) http.Handler {
	t.Helper()
	userSvc := &fakeUserService{}
	return NewRouter(
		userSvc,
		NewTrackingHandler(trackingSvc),
		NewDayOffHandler(dayOffSvc),
		NewReportHandler(&fakeReportService{}),
		NewUserHandler(userSvc),
		NewOperationHandler(&fakeOperationRepo{}),
		"test",
	)
}

func doRequest(t *testing.T, router http.Handler, method, path, externalID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if externalID != "" {
		req.Header.Set(middleware.ExternalIDHeader, externalID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRouter_MissingIdentityHeader(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/tracking/status", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestRouter_TrackingStatus(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/tracking/status", "ext-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.True(t, data["shift_active"].(bool))
}

func TestRouter_StartShift(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/tracking/shift/start", "ext-1", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
}

func TestRouter_StartShift_Conflict(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{startShiftErr: tracking.ErrShiftAlreadyActive}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/tracking/shift/start", "ext-1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestRouter_WorkTime_NoShiftRecorded(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/tracking/worktime", "ext-1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_BookDayOff(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	body, _ := json.Marshal(dayoff.BookRequest{Date: "2024-03-10"})
	w := doRequest(t, router, http.MethodPost, "/api/v1/dayoffs", "ext-1", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2024-03-10", data["date"])
	assert.Equal(t, "id-ext-1", data["user_id"])
}

func TestRouter_BookDayOff_DateTaken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{bookErr: dayoff.ErrDateTaken})

	body, _ := json.Marshal(dayoff.BookRequest{Date: "2024-03-10"})
	w := doRequest(t, router, http.MethodPost, "/api/v1/dayoffs", "ext-1", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_BookDayOff_InvalidJSON(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/dayoffs", "ext-1", []byte("not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Report_RequiresAdmin(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/reports/attendance?date_from=2024-03-01&date_to=2024-03-31", "ext-1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_Report_AdminJSON(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/reports/attendance?date_from=2024-03-01&date_to=2024-03-31", "admin", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
}

func TestRouter_Report_AdminCSV(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/reports/attendance?date_from=2024-03-01&date_to=2024-03-31&format=csv", "admin", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance_2024-03-01_2024-03-31.csv")
}

func TestRouter_Report_UnsupportedFormat(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/reports/attendance?date_from=2024-03-01&date_to=2024-03-31&format=xlsx", "admin", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Report_InvertedRange(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/reports/attendance?date_from=2024-03-31&date_to=2024-03-01", "admin", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_AdminDayOffList_RequiresAdmin(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/admin/dayoffs", "ext-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/dayoffs", "admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Me(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, &fakeTrackingService{}, &fakeDayOffService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/me", "ext-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ext-1", data["external_id"])
}
