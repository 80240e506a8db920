package register_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/user"
)

// UseCase заводит профиль студента или преподавателя.
// Без профиля бронирования и окна с этим ID отклоняются хранилищем
type UseCase struct {
	userRepo UserRepository
	clock    Clock
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, clk Clock, logger Logger) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		clock:    clk,
		logger:   logger,
	}
}

// Execute проверяет профиль и сохраняет его
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RegisterUser: validation failed: %v", err)
		return nil, err
	}
	u.CreatedAt = uc.clock.Now()

	created, err := uc.userRepo.Create(ctx, u)
	if errors.Is(err, userRepo.ErrUserExists) {
		uc.logger.Warn("RegisterUser: id=%s email=%s already registered", u.ID, u.Email)
		return nil, fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: RegisterUser - create: %w", domain.ErrStoreUnavailable, err)
	}

	uc.logger.Info("RegisterUser: user id=%s role=%s registered", created.ID, created.Role)
	return &Response{
		ID:        created.ID,
		Role:      string(created.Role),
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Email:     created.Email,
		Phone:     created.Phone,
		IsActive:  created.IsActive,
		CreatedAt: created.CreatedAt,
	}, nil
}
