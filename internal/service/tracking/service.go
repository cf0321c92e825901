package tracking

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/operation"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/tracking"
)

type TrackingServiceImpl struct {
	operationRepo operation.OperationRepository
}

func NewTrackingService(operationRepo operation.OperationRepository) tracking.TrackingService {
	return &TrackingServiceImpl{
		operationRepo: operationRepo,
	}
}

// isActive is the one rule every status query derives from: the latest start
// event of a resource is active iff no end event was logged after it.
func (s *TrackingServiceImpl) isActive(ctx context.Context, userID string, startKind, endKind operation.Kind) (bool, error) {
	lastStart, err := s.operationRepo.LastOf(ctx, userID, startKind)
	if err != nil {
		return false, fmt.Errorf("failed to get last %s: %w", startKind, err)
	}
	if lastStart == nil {
		return false, nil
	}

	endsAfter, err := s.operationRepo.CountAfter(ctx, userID, endKind, *lastStart)
	if err != nil {
		return false, fmt.Errorf("failed to count %s after start: %w", endKind, err)
	}

	return endsAfter == 0, nil
}

// IsShiftActive implements tracking.TrackingService.
func (s *TrackingServiceImpl) IsShiftActive(ctx context.Context, userID string) (bool, error) {
	return s.isActive(ctx, userID, operation.KindStartShift, operation.KindEndShift)
}

// IsBreakActive implements tracking.TrackingService.
func (s *TrackingServiceImpl) IsBreakActive(ctx context.Context, userID string) (bool, error) {
	return s.isActive(ctx, userID, operation.KindStartBreak, operation.KindEndBreak)
}

// Status implements tracking.TrackingService.
func (s *TrackingServiceImpl) Status(ctx context.Context, userID string) (tracking.StatusResponse, error) {
	shiftActive, err := s.IsShiftActive(ctx, userID)
	if err != nil {
		return tracking.StatusResponse{}, err
	}

	breakActive, err := s.IsBreakActive(ctx, userID)
	if err != nil {
		return tracking.StatusResponse{}, err
	}

	return tracking.StatusResponse{
		ShiftActive: shiftActive,
		BreakActive: breakActive,
	}, nil
}

// LastShiftWindow implements tracking.TrackingService.
func (s *TrackingServiceImpl) LastShiftWindow(ctx context.Context, userID string) (tracking.ShiftWindowResponse, error) {
	lastStart, err := s.operationRepo.LastOf(ctx, userID, operation.KindStartShift)
	if err != nil {
		return tracking.ShiftWindowResponse{}, fmt.Errorf("failed to get last shift start: %w", err)
	}
	if lastStart == nil {
		return tracking.ShiftWindowResponse{}, tracking.ErrNoShiftRecorded
	}

	end, err := s.operationRepo.FirstAfter(ctx, userID, operation.KindEndShift, *lastStart)
	if err != nil {
		return tracking.ShiftWindowResponse{}, fmt.Errorf("failed to get shift end: %w", err)
	}

	resp := tracking.ShiftWindowResponse{
		StartedAt: tracking.FormatTimestamp(lastStart.CreatedAt),
	}
	if end != nil {
		endedAt := tracking.FormatTimestamp(end.CreatedAt)
		resp.EndedAt = &endedAt
		resp.Completed = true
	}

	return resp, nil
}

// StartShift implements tracking.TrackingService.
func (s *TrackingServiceImpl) StartShift(ctx context.Context, userID string) (tracking.EventResponse, error) {
	active, err := s.IsShiftActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if active {
		return tracking.EventResponse{}, tracking.ErrShiftAlreadyActive
	}

	return s.append(ctx, userID, operation.KindStartShift)
}

// EndShift implements tracking.TrackingService.
func (s *TrackingServiceImpl) EndShift(ctx context.Context, userID string) (tracking.EventResponse, error) {
	active, err := s.IsShiftActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if !active {
		return tracking.EventResponse{}, tracking.ErrNoActiveShift
	}

	return s.append(ctx, userID, operation.KindEndShift)
}

// StartBreak implements tracking.TrackingService.
func (s *TrackingServiceImpl) StartBreak(ctx context.Context, userID string) (tracking.EventResponse, error) {
	shiftActive, err := s.IsShiftActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if !shiftActive {
		return tracking.EventResponse{}, tracking.ErrNoActiveShift
	}

	breakActive, err := s.IsBreakActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if breakActive {
		return tracking.EventResponse{}, tracking.ErrBreakAlreadyActive
	}

	return s.append(ctx, userID, operation.KindStartBreak)
}

// EndBreak implements tracking.TrackingService.
func (s *TrackingServiceImpl) EndBreak(ctx context.Context, userID string) (tracking.EventResponse, error) {
	shiftActive, err := s.IsShiftActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if !shiftActive {
		return tracking.EventResponse{}, tracking.ErrNoActiveShift
	}

	breakActive, err := s.IsBreakActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if !breakActive {
		return tracking.EventResponse{}, tracking.ErrNoActiveBreak
	}

	return s.append(ctx, userID, operation.KindEndBreak)
}

// SubmitPhoto implements tracking.TrackingService.
func (s *TrackingServiceImpl) SubmitPhoto(ctx context.Context, userID string) (tracking.EventResponse, error) {
	shiftActive, err := s.IsShiftActive(ctx, userID)
	if err != nil {
		return tracking.EventResponse{}, err
	}
	if !shiftActive {
		return tracking.EventResponse{}, tracking.ErrNoActiveShift
	}

	return s.append(ctx, userID, operation.KindPhotoReceived)
}

func (s *TrackingServiceImpl) append(ctx context.Context, userID string, kind operation.Kind) (tracking.EventResponse, error) {
	op, err := s.operationRepo.Append(ctx, userID, kind)
	if err != nil {
		return tracking.EventResponse{}, fmt.Errorf("failed to record %s: %w", kind, err)
	}

	return tracking.EventResponse{
		Kind:       string(op.Kind),
		RecordedAt: tracking.FormatTimestamp(op.CreatedAt),
	}, nil
}
