package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/tracking"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db              *database.DB
	userRepo        user.UserRepository
	trackingService tracking.TrackingService
}

func NewUserService(db *database.DB, userRepo user.UserRepository, trackingService tracking.TrackingService) user.UserService {
	return &UserServiceImpl{
		db:              db,
		userRepo:        userRepo,
		trackingService: trackingService,
	}
}

// Identify implements user.UserService. The select-insert-reselect in the
// repository runs on one connection so a first contact resolves consistently.
func (s *UserServiceImpl) Identify(ctx context.Context, externalID string) (user.User, error) {
	var u user.User
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		u, err = s.userRepo.GetOrCreateByExternalID(txCtx, externalID)
		if err != nil {
			return fmt.Errorf("failed to identify user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// List implements user.UserService. Each record carries the derived
// shift-active flag the back-office list displays.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		active, err := s.trackingService.IsShiftActive(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to derive shift state for %s: %w", u.ID, err)
		}
		u.ShiftActive = &active
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
